// Package responder answers chat widget messages with canned replies chosen
// by ordered pattern rules.
package responder

import (
	"math/rand/v2"
	"strings"
)

type Category string

const (
	CategoryCasual     Category = "casual_greeting"
	CategoryIdentity   Category = "identity"
	CategoryThanks     Category = "thanks"
	CategoryHelp       Category = "help"
	CategoryProduct    Category = "what_is_glider"
	CategoryFeatures   Category = "features"
	CategorySecurity   Category = "security"
	CategorySocial     Category = "social_layer"
	CategoryMessaging  Category = "messaging"
	CategoryWallet     Category = "wallet"
	CategoryWorkspace  Category = "workifi"
	CategoryAIHub      Category = "ai_hub"
	CategoryOnboarding Category = "getting_started"
	CategoryDefault    Category = "default"
)

const welcomeSuggestions = "\n\nTry asking:\n• What is Glider?\n• What features do you offer?\n• How secure is Glider?"

// Chooser picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Chooser interface {
	IntN(n int) int
}

type globalChooser struct{}

func (globalChooser) IntN(n int) int { return rand.IntN(n) }

// Reply is one assistant message.
type Reply struct {
	Category Category `json:"category"`
	Content  string   `json:"content"`
}

type Responder struct {
	rules   []Rule
	replies map[Category][]string
	chooser Chooser
}

type Option func(*Responder)

// WithChooser replaces the random source, mainly so tests can pin a variant.
// The chooser must be safe for concurrent use if the Responder is shared.
func WithChooser(c Chooser) Option {
	return func(r *Responder) { r.chooser = c }
}

func WithRules(rules []Rule) Option {
	return func(r *Responder) { r.rules = rules }
}

func New(opts ...Option) *Responder {
	r := &Responder{
		rules:   DefaultRules(),
		replies: replies,
		chooser: globalChooser{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Classify returns the category of the first rule matching the lowercased,
// trimmed message.
func (r *Responder) Classify(message string) Category {
	text := normalize(message)
	for _, rule := range r.rules {
		if rule.Match(text) {
			return rule.Category
		}
	}
	return CategoryDefault
}

// Respond never fails; unmatched input gets a default reply.
func (r *Responder) Respond(message string) Reply {
	cat := r.Classify(message)
	pool := r.replies[cat]
	if len(pool) == 0 {
		cat, pool = CategoryDefault, r.replies[CategoryDefault]
	}
	return Reply{Category: cat, Content: r.pick(pool)}
}

// Welcome is the session-opening message. It is not drawn at random.
func (r *Responder) Welcome() string {
	return greetings[0] + welcomeSuggestions
}

// Variants exposes a category's reply pool.
func (r *Responder) Variants(cat Category) []string {
	return append([]string(nil), r.replies[cat]...)
}

func (r *Responder) pick(pool []string) string {
	if len(pool) == 1 {
		return pool[0]
	}
	i := r.chooser.IntN(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}

func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
