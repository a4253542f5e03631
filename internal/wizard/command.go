package wizard

// Command is a state transition dispatched to Wizard.Dispatch.
type Command interface {
	command()
}

type Advance struct{}

type Retreat struct{}

type JumpTo struct {
	Step int
}

type SetField struct {
	Key   FieldKey
	Value Value
}

type AddItem struct {
	Key  FieldKey
	Item string
}

type RemoveItem struct {
	Key  FieldKey
	Item string
}

type AppendRecord struct {
	Key    FieldKey
	Record Record
}

type RemoveRecord struct {
	Key   FieldKey
	Index int
}

type Submit struct{}

func (Advance) command() {}
func (Retreat) command() {}
func (JumpTo) command() {}
func (SetField) command() {}
func (AddItem) command() {}
func (RemoveItem) command() {}
func (AppendRecord) command() {}
func (RemoveRecord) command() {}
func (Submit) command() {}
