package builder

import (
	"errors"
	"sync"

	"github.com/huozturk-art/dr.burgerweb-sub000/entity"
)

var (
	ErrStepIncomplete    = errors.New("step requirements not met")
	ErrUnknownIngredient = errors.New("ingredient not in this step")
	ErrAlreadyDone       = errors.New("order already submitted")
)

// Step is one wizard screen: a category plus the ingredients offered on it.
type Step struct {
	Category    entity.IngredientCategory `json:"category"`
	Ingredients []entity.Ingredient       `json:"ingredients"`
}

type Selection struct {
	Ingredient entity.Ingredient `json:"ingredient"`
	Category   string            `json:"category"`
	Qty        int               `json:"qty"`
}

// SnapshotItem is one entry of a saved burger's JSON snapshot.
type SnapshotItem struct {
	IngredientID uint   `json:"ingredientId"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Qty          int    `json:"qty"`
}

// Session is the in-memory state of one customer walking the wizard.
// Selections are keyed by category id, not step index, so a catalog reorder
// mid-session never misattributes picks.
type Session struct {
	mu sync.Mutex

	Token string

	steps      []Step
	stepIdx    int // == len(steps) means the order form
	selections map[uint][]Selection
	orderNo    string
}

func NewSession(token string, steps []Step) *Session {
	return &Session{
		Token:      token,
		steps:      steps,
		selections: make(map[uint][]Selection),
	}
}

// Toggle flips an ingredient on the active step. Selected → removed.
// New and below the category maximum → appended with qty 1. New while the
// category is already full → the most recently added selection is evicted
// and the new one takes its place.
func (s *Session) Toggle(ingredientID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orderNo != "" {
		return ErrAlreadyDone
	}
	if s.stepIdx >= len(s.steps) {
		return ErrUnknownIngredient
	}
	step := s.steps[s.stepIdx]
	catID := step.Category.ID

	var ing *entity.Ingredient
	for i := range step.Ingredients {
		if step.Ingredients[i].ID == ingredientID {
			ing = &step.Ingredients[i]
			break
		}
	}
	if ing == nil {
		return ErrUnknownIngredient
	}

	sels := s.selections[catID]
	for i, sel := range sels {
		if sel.Ingredient.ID == ingredientID {
			s.selections[catID] = append(sels[:i], sels[i+1:]...)
			return nil
		}
	}

	next := Selection{Ingredient: *ing, Category: step.Category.Name, Qty: 1}
	if step.Category.MaxSelect > 0 && len(sels) >= step.Category.MaxSelect {
		// full: last-in eviction, keep the earlier picks
		sels = sels[:len(sels)-1]
	}
	s.selections[catID] = append(sels, next)
	return nil
}

// UpdateQty adds delta to a selection's quantity. A selection that reaches
// zero is removed entirely, same as a deselect.
func (s *Session) UpdateQty(ingredientID uint, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for catID, sels := range s.selections {
		for i, sel := range sels {
			if sel.Ingredient.ID != ingredientID {
				continue
			}
			sel.Qty += delta
			if sel.Qty <= 0 {
				s.selections[catID] = append(sels[:i], sels[i+1:]...)
			} else {
				sels[i] = sel
			}
			return
		}
	}
}

func (s *Session) stepValid(idx int) bool {
	step := s.steps[idx]
	if !step.Category.IsRequired {
		return true
	}
	return len(s.selections[step.Category.ID]) >= step.Category.MinSelect
}

// Next advances to the following step, or to the order form from the last
// one. Blocked while a required category is under its minimum.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orderNo != "" {
		return ErrAlreadyDone
	}
	if s.stepIdx >= len(s.steps) {
		return nil // already on the order form
	}
	if !s.stepValid(s.stepIdx) {
		return ErrStepIncomplete
	}
	s.stepIdx++
	return nil
}

// Back returns from the order form to the last category, otherwise moves one
// step back. No-op on the first step.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stepIdx > 0 {
		s.stepIdx--
	}
}

func (s *Session) OnOrderForm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepIdx >= len(s.steps)
}

// Totals sums price and calories over every selection.
func (s *Session) Totals() (price float64, calories int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *Session) totalsLocked() (price float64, calories int) {
	for _, sels := range s.selections {
		for _, sel := range sels {
			price += sel.Ingredient.Price * float64(sel.Qty)
			calories += sel.Ingredient.Calories * sel.Qty
		}
	}
	return price, calories
}

// Selections returns every pick flattened in step order.
func (s *Session) Selections() []Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Selection, 0)
	for _, step := range s.steps {
		out = append(out, s.selections[step.Category.ID]...)
	}
	return out
}

// ApplySnapshot rebuilds the selection map from a saved design. Entries are
// matched by category name plus ingredient id against the live catalog;
// anything the catalog no longer offers is dropped and returned so the
// caller can tell the customer.
func (s *Session) ApplySnapshot(items []SnapshotItem) (dropped []SnapshotItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections = make(map[uint][]Selection)
	for _, item := range items {
		matched := false
		for _, step := range s.steps {
			if step.Category.Name != item.Category {
				continue
			}
			for i := range step.Ingredients {
				if step.Ingredients[i].ID != item.IngredientID {
					continue
				}
				qty := item.Qty
				if qty < 1 {
					qty = 1
				}
				s.selections[step.Category.ID] = append(s.selections[step.Category.ID], Selection{
					Ingredient: step.Ingredients[i],
					Category:   step.Category.Name,
					Qty:        qty,
				})
				matched = true
			}
		}
		if !matched {
			dropped = append(dropped, item)
		}
	}
	return dropped
}

// Complete records the generated order number; the session then only serves
// the success screen until Reset.
func (s *Session) Complete(orderNo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderNo = orderNo
}

func (s *Session) OrderNo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderNo
}

// Reset returns to step 0 with empty selections ("build another").
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stepIdx = 0
	s.selections = make(map[uint][]Selection)
	s.orderNo = ""
}

// State is the wire shape the wizard UI renders from.
type State struct {
	Token         string                 `json:"token"`
	StepIndex     int                    `json:"stepIndex"`
	TotalSteps    int                    `json:"totalSteps"`
	OnOrderForm   bool                   `json:"onOrderForm"`
	CurrentStep   *Step                  `json:"currentStep,omitempty"`
	CanAdvance    bool                   `json:"canAdvance"`
	Selections    map[string][]Selection `json:"selections"`
	TotalPrice    float64                `json:"totalPrice"`
	TotalCalories int                    `json:"totalCalories"`
	OrderNo       string                 `json:"orderNo,omitempty"`
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Token:       s.Token,
		StepIndex:   s.stepIdx,
		TotalSteps:  len(s.steps),
		OnOrderForm: s.stepIdx >= len(s.steps),
		Selections:  make(map[string][]Selection),
		OrderNo:     s.orderNo,
	}
	if !st.OnOrderForm {
		step := s.steps[s.stepIdx]
		st.CurrentStep = &step
		st.CanAdvance = s.stepValid(s.stepIdx)
	}
	for _, step := range s.steps {
		if sels := s.selections[step.Category.ID]; len(sels) > 0 {
			st.Selections[step.Category.Name] = sels
		}
	}
	st.TotalPrice, st.TotalCalories = s.totalsLocked()
	return st
}
