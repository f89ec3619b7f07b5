package contracts

import "fmt"

// LogicalCommand is a mixer-protocol-independent intent produced by the
// event interpreter and consumed by a mixer session. The variant set is
// closed: SoftkeyPress, SoftkeyRelease, SceneRecall and MuteSet.
type LogicalCommand interface {
	fmt.Stringer
	logicalCommand()
}

// SoftkeyPress presses mixer softkey Index (1-based).
type SoftkeyPress struct {
	Index int
}

// SoftkeyRelease releases mixer softkey Index (1-based).
type SoftkeyRelease struct {
	Index int
}

// SceneRecall recalls mixer scene Scene (1-based).
type SceneRecall struct {
	Scene int
}

// MuteSet switches the mute state of input channel Channel (1-based).
type MuteSet struct {
	Channel int
	On      bool
}

func (SoftkeyPress) logicalCommand()   {}
func (SoftkeyRelease) logicalCommand() {}
func (SceneRecall) logicalCommand()    {}
func (MuteSet) logicalCommand()        {}

func (c SoftkeyPress) String() string   { return fmt.Sprintf("softkey-press %d", c.Index) }
func (c SoftkeyRelease) String() string { return fmt.Sprintf("softkey-release %d", c.Index) }
func (c SceneRecall) String() string    { return fmt.Sprintf("scene-recall %d", c.Scene) }

func (c MuteSet) String() string {
	if c.On {
		return fmt.Sprintf("mute ch %d", c.Channel)
	}
	return fmt.Sprintf("unmute ch %d", c.Channel)
}
