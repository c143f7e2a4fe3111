package ast

type (
	FileID    uint32
	StmtID    uint32
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoStmtID    StmtID    = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
