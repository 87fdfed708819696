package arena

import (
	"encoding/gob"
	"io"
	"math"
	"sort"
	"sync"
)

const (
	InitialRating = 1500
	ratingK       = 32
)

// Ratings is an Elo table by player name. It is a store.Snapshot, so the
// table carries over between tournaments.
type Ratings struct {
	mu     sync.Mutex
	rating map[string]float64
}

func NewRatings() *Ratings {
	return &Ratings{rating: make(map[string]float64)}
}

// Add registers names at InitialRating, keeping the ratings of known ones.
func (r *Ratings) Add(names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if _, ok := r.rating[name]; !ok {
			r.rating[name] = InitialRating
		}
	}
}

// Reset puts every known player back to InitialRating.
func (r *Ratings) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name := range r.rating {
		r.rating[name] = InitialRating
	}
}

func (r *Ratings) Rating(name string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.rating[name]; ok {
		return v
	}
	return InitialRating
}

func expectedScore(ra, rb float64) float64 {
	return 1 / (1 + math.Pow(10, (rb-ra)/400))
}

// Update applies the result of games between a and b, where scoreA counts a
// win as 1 and a draw as 0.5.
func (r *Ratings) Update(a, b string, games int, scoreA float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ra, rb = r.get(a), r.get(b)
	var delta = ratingK * (scoreA - float64(games)*expectedScore(ra, rb))
	r.rating[a] = ra + delta
	r.rating[b] = rb - delta
}

func (r *Ratings) get(name string) float64 {
	if v, ok := r.rating[name]; ok {
		return v
	}
	return InitialRating
}

type Standing struct {
	Name   string
	Rating float64
}

// Table lists players by rating, best first.
func (r *Ratings) Table() []Standing {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result = make([]Standing, 0, len(r.rating))
	for name, rating := range r.rating {
		result = append(result, Standing{Name: name, Rating: rating})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Rating != result[j].Rating {
			return result[i].Rating > result[j].Rating
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func (r *Ratings) Load(rd io.Reader) error {
	var saved map[string]float64
	if err := gob.NewDecoder(rd).Decode(&saved); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, rating := range saved {
		r.rating[name] = rating
	}
	return nil
}

func (r *Ratings) Save(w io.Writer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return gob.NewEncoder(w).Encode(r.rating)
}
