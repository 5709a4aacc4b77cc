package wizard

import (
	"fmt"

	"ResumeBot/model"
)

type fieldAction int

const (
	nextField fieldAction = iota
	itemDone
)

// field is one question asked for every item of a collection.
type field[T any] struct {
	step     model.Step
	prompt   promptFunc
	invalid  string
	validate Validator
	// abandon makes the skip token leave the whole section instead of being stored.
	abandon bool
	set     func(item *T, value string) fieldAction
}

// collection drives a repeating section: count-or-skip, the per-item field
// sequence, then the continue question. The count step lives in the top-level
// table and calls begin or leave; everything else is generated here.
type collection[T any] struct {
	track  model.Track
	items  func(*model.Record) *[]T
	fields []field[T]
	more   model.Step
	moreQ  promptFunc
	after  model.Step
	// onAbandon lets a section record that it was skipped.
	onAbandon func(rec *model.Record)
}

// begin positions the conversation on the first field of item index.
func (c *collection[T]) begin(index, declared int) model.ConversationState {
	return model.ConversationState{Step: c.fields[0].step, Track: c.track, Index: index, Declared: declared}
}

func (c *collection[T]) leave() model.ConversationState {
	return model.ConversationState{Step: c.after}
}

// steps builds the transition table entries owned by this collection.
func (c *collection[T]) steps() map[model.Step]stepDef {
	defs := make(map[model.Step]stepDef, len(c.fields)+1)
	for i, f := range c.fields {
		pos := i
		defs[f.step] = stepDef{
			prompt:   f.prompt,
			invalid:  f.invalid,
			validate: f.validate,
			apply: func(value string, st model.ConversationState, rec *model.Record) (model.ConversationState, error) {
				return c.fill(pos, value, st, rec)
			},
		}
	}
	defs[c.more] = stepDef{
		prompt:   c.moreQ,
		invalid:  errYesNo,
		validate: yesNo,
		apply:    c.proceed,
	}
	return defs
}

func (c *collection[T]) fill(pos int, value string, st model.ConversationState, rec *model.Record) (model.ConversationState, error) {
	f := c.fields[pos]
	if f.abandon && isSkip(value) {
		if c.onAbandon != nil {
			c.onAbandon(rec)
		}
		return c.leave(), nil
	}

	items := c.items(rec)
	if pos == 0 {
		if st.Index != len(*items) {
			return st, &model.IllegalTransitionError{
				Step:   st.Step,
				Index:  st.Index,
				Reason: fmt.Sprintf("new %s item must be appended at %d", c.track, len(*items)),
			}
		}
		var zero T
		*items = append(*items, zero)
	}
	if st.Index < 0 || st.Index >= len(*items) {
		return st, &model.IllegalTransitionError{
			Step:   st.Step,
			Index:  st.Index,
			Reason: fmt.Sprintf("%s has %d items", c.track, len(*items)),
		}
	}

	if f.set(&(*items)[st.Index], value) == itemDone || pos == len(c.fields)-1 {
		st.Step = c.more
		return st, nil
	}
	st.Step = c.fields[pos+1].step
	return st, nil
}

// proceed answers the continue question; only this answer controls looping.
func (c *collection[T]) proceed(value string, st model.ConversationState, _ *model.Record) (model.ConversationState, error) {
	if isYes(value) {
		return c.begin(st.Index+1, st.Declared), nil
	}
	return c.leave(), nil
}
