package render

import (
	"fmt"

	"github.com/m-zajac/portfolio/internal/app"
)

// HiddenClass is added to the loading indicator once loading finishes.
const HiddenClass = "hidden"

// Document is a host page with named insertion points.
type Document interface {
	SetInnerHTML(id string, fragment string) error
	AddClass(id string, class string) error
}

// Apply writes state fragments into document slots.
// If rendered state can't be turned into fragments, every slot gets the load failure message instead.
// For terminal states the loading indicator is hidden, even if writing slots failed.
func Apply(doc Document, r *Renderer, state app.State) (err error) {
	if !app.IsTerminal(state) {
		return nil
	}

	defer func() {
		if hideErr := doc.AddClass(app.LoadingElementID, HiddenClass); hideErr != nil && err == nil {
			err = fmt.Errorf("hiding loading indicator: %w", hideErr)
		}
	}()

	fragments, err := r.Fragments(state)
	if err != nil {
		r.l.WithError(err).Error("Error rendering repositories")
		fragments, err = r.Fragments(app.Errored{Message: app.LoadFailureMessage})
		if err != nil {
			return err
		}
	}
	for _, slot := range app.Slots {
		if err := doc.SetInnerHTML(string(slot), string(fragments[slot])); err != nil {
			return fmt.Errorf("writing slot %s: %w", slot, err)
		}
	}

	return nil
}
