package recording

import "github.com/gogpu/segbar"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillRect CommandType = iota // Fill an axis-aligned rectangle
	CmdFillPath                    // Fill a closed path
)

var commandTypeNames = [...]string{
	CmdFillRect: "FillRect",
	CmdFillPath: "FillPath",
}

// String returns the command name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// Command is a single recorded drawing operation.
type Command interface {
	Type() CommandType
	// Bounds returns the area the command may paint.
	Bounds() segbar.Rect
	// Fill returns the solid color of the command.
	Fill() segbar.RGBA
}

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect  segbar.Rect
	Color segbar.RGBA
}

func (FillRectCommand) Type() CommandType     { return CmdFillRect }
func (c FillRectCommand) Bounds() segbar.Rect { return c.Rect }
func (c FillRectCommand) Fill() segbar.RGBA   { return c.Color }

// FillPathCommand fills a closed path. Path is a private copy.
type FillPathCommand struct {
	Path  *segbar.Path
	Color segbar.RGBA
}

func (FillPathCommand) Type() CommandType     { return CmdFillPath }
func (c FillPathCommand) Bounds() segbar.Rect { return c.Path.Bounds() }
func (c FillPathCommand) Fill() segbar.RGBA   { return c.Color }
