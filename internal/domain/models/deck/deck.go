package deck

import (
	"time"
)

// Deck is the editable pitch deck: company identity, theme and ordered slides.
// Slide order is display order.
type Deck struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Tagline     string    `json:"tagline"`
	Theme       Theme     `json:"theme"`
	Slides      []Slide   `json:"slides"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Slide struct {
	ID       string   `json:"id"`
	Kind     Kind     `json:"type"`
	Title    string   `json:"title"`
	Content  string   `json:"content,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
	Metrics  []Metric `json:"metrics,omitempty"`
	Icon     string   `json:"icon,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"` // title slide only
}

type Metric struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Clone returns a deep copy so stored state is never aliased by callers.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	out := *d
	if d.Slides != nil {
		out.Slides = make([]Slide, len(d.Slides))
		for i := range d.Slides {
			out.Slides[i] = d.Slides[i].Clone()
		}
	}
	return &out
}

// Clone returns a deep copy of the slide.
func (s Slide) Clone() Slide {
	out := s
	if s.Bullets != nil {
		out.Bullets = append([]string(nil), s.Bullets...)
	}
	if s.Metrics != nil {
		out.Metrics = append([]Metric(nil), s.Metrics...)
	}
	return out
}

// SlideCount returns the number of slides.
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// HasSlideID reports whether any slide in the deck already uses id.
func (d *Deck) HasSlideID(id string) bool {
	for i := range d.Slides {
		if d.Slides[i].ID == id {
			return true
		}
	}
	return false
}

// InsertSlide inserts s at position, shifting later slides right.
// Out-of-range positions (including negative ones) append.
// Returns the index the slide ended up at.
func (d *Deck) InsertSlide(position int, s Slide) int {
	if position < 0 || position > len(d.Slides) {
		d.Slides = append(d.Slides, s)
		return len(d.Slides) - 1
	}
	d.Slides = append(d.Slides, Slide{})
	copy(d.Slides[position+1:], d.Slides[position:])
	d.Slides[position] = s
	return position
}

// RemoveSlide removes the slide at index, shifting later slides left.
// The caller must have validated index.
func (d *Deck) RemoveSlide(index int) Slide {
	removed := d.Slides[index]
	d.Slides = append(d.Slides[:index], d.Slides[index+1:]...)
	return removed
}

// Info is the listing view of a deck: identity and shape without slide bodies.
type Info struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"companyName"`
	Tagline     string    `json:"tagline"`
	Theme       Theme     `json:"theme"`
	SlideCount  int       `json:"slideCount"`
	Current     bool      `json:"current"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Info summarizes d; Current is left to the caller, who knows the session.
func (d *Deck) Info() Info {
	return Info{
		ID:          d.ID,
		CompanyName: d.CompanyName,
		Tagline:     d.Tagline,
		Theme:       d.Theme,
		SlideCount:  len(d.Slides),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
