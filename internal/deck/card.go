package deck

import "strings"

// Card is a question/answer pair with an identifier unique within its Store.
type Card struct {
	ID       int
	Question string
	Answer   string
}

// Draft is the uncommitted input of the add-card form.
type Draft struct {
	Question string
	Answer   string
}

// Valid reports whether both fields are non-blank after trimming whitespace.
func (d Draft) Valid() bool {
	return !isBlank(d.Question) && !isBlank(d.Answer)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsZero reports whether the draft holds no input at all.
func (d Draft) IsZero() bool {
	return d.Question == "" && d.Answer == ""
}

// DefaultSeed is the deck every new session starts with unless configured otherwise.
var DefaultSeed = []Draft{
	{Question: "What is React?", Answer: "A JavaScript library for building user interfaces"},
	{Question: "What is JSX?", Answer: "JavaScript XML - syntax extension for JavaScript"},
	{Question: "What is Vite?", Answer: "A fast build tool and development server"},
	{Question: "What is useState?", Answer: "A React Hook for managing state in functional components"},
	{Question: "What is useEffect?", Answer: "A React Hook for performing side effects"},
}
