package importer

import (
	"github.com/KirkDiggler/statblock-importer/internal/entities/drawsteel"
)

// EventMonsterImported is published after a monster has been stored
const EventMonsterImported = "statblock.monster.imported"

// DefaultWorkers bounds batch imports when no worker count is given
const DefaultWorkers = 4

// ImportMonsterInput defines the request for importing one statblock export
type ImportMonsterInput struct {
	Data   []byte
	Source string // file name or other origin, kept on the record
	DryRun bool   // assemble and validate without storing
}

// ImportMonsterOutput defines the response for importing a statblock
type ImportMonsterOutput struct {
	Monster *drawsteel.Monster
}

// BatchFile is one export in a batch import
type BatchFile struct {
	Name string
	Data []byte
}

// ImportBatchInput defines the request for importing many exports at once
type ImportBatchInput struct {
	Files   []BatchFile
	Workers int
	DryRun  bool
}

// BatchResult is the outcome of one file. Exactly one of Monster and Err is set.
type BatchResult struct {
	File    string
	Monster *drawsteel.Monster
	Err     error
}

// ImportBatchOutput defines the response for a batch import. Results keep
// the order of the input files.
type ImportBatchOutput struct {
	Results  []BatchResult
	Imported int
	Failed   int
}

// ParseMaliceTextInput defines the request for scanning malice prose
type ParseMaliceTextInput struct {
	Text    string
	Highest drawsteel.Characteristic
}

// ParseMaliceTextOutput defines the response for scanning malice prose
type ParseMaliceTextOutput struct {
	TypeKey string
	Items   []*drawsteel.Item
}

// GetMonsterInput defines the request for getting a stored monster
type GetMonsterInput struct {
	ID string
}

// GetMonsterOutput defines the response for getting a stored monster
type GetMonsterOutput struct {
	Monster *drawsteel.Monster
}

// ListMonstersInput defines the request for listing stored monsters
type ListMonstersInput struct {
	Limit int
}

// ListMonstersOutput defines the response for listing stored monsters
type ListMonstersOutput struct {
	Monsters []*drawsteel.Monster
}

// DeleteMonsterInput defines the request for deleting a stored monster
type DeleteMonsterInput struct {
	ID string
}

// DeleteMonsterOutput defines the response for deleting a stored monster
type DeleteMonsterOutput struct{}
