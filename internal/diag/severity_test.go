package diag

import (
	"testing"

	"dandiya/internal/source"
)

func pos(line, col uint32) source.Pos {
	return source.Pos{Line: line, Col: col}
}

func TestSeverityString(t *testing.T) {
	if SevError.String() != "ERROR" || SevWarning.String() != "WARNING" || SevInfo.String() != "INFO" {
		t.Fatalf("severity strings changed")
	}
}
