package ast

// DeclID addresses a declaration inside a Unit.
type DeclID uint32

const NoDeclID DeclID = 0

func (id DeclID) IsValid() bool { return id != NoDeclID }
