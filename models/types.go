package models

// Add-letter status markers
const (
	StatusCreated  = 0
	StatusRejected = 1
)

// MaxLetterLength is counted in characters, not bytes.
const MaxLetterLength = 10

// Domain types

// Letter is a persisted letter record. Records are never updated or deleted.
type Letter struct {
	ID      int
	Letter  string
	Value   int
	Strokes int
	Vowel   bool
}

// Request types
//
// Fields are pointers so a missing field can be told apart from a zero value.

type AddLetterRequest struct {
	Letter  *string `json:"letter" validate:"required,min=1,max=10"`
	Value   *int    `json:"value" validate:"required"`
	Strokes *int    `json:"strokes" validate:"required"`
	Vowel   *bool   `json:"vowel" validate:"required"`
}

type LoginRequest struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// Response types

type LetterResponse struct {
	ID      int    `json:"id"`
	Letter  string `json:"letter"`
	Value   int    `json:"value"`
	Strokes int    `json:"strokes"`
	Vowel   bool   `json:"vowel"`
}

// NewLetterResponse maps a stored letter to its wire form.
func NewLetterResponse(l Letter) LetterResponse {
	return LetterResponse{
		ID:      l.ID,
		Letter:  l.Letter,
		Value:   l.Value,
		Strokes: l.Strokes,
		Vowel:   l.Vowel,
	}
}

type LettersResponse struct {
	Letters []string `json:"letters"`
}

type ShuffleResponse struct {
	ShuffledLetters string `json:"shuffled_letters"`
}

type AddLetterResponse struct {
	Status int `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
