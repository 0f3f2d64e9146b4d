package responder

import (
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedChooser int

func (f fixedChooser) IntN(n int) int { return int(f) % n }

func TestClassify(t *testing.T) {
	r := New()

	tests := []struct {
		input string
		want  Category
	}{
		{"hey", CategoryCasual},
		{"How's it going?", CategoryCasual},
		{"Good morning!", CategoryCasual},
		{"hey, tell me about the glider wallet", CategoryCasual},
		{"hello wallet", CategoryCasual},
		{"who are you?", CategoryIdentity},
		{"thanks a lot", CategoryThanks},
		{"i need help", CategoryHelp},
		{"what is glider?", CategoryProduct},
		{"  WHAT IS GLIDER  ", CategoryProduct},
		{"what features do you have", CategoryFeatures},
		{"is my data secure with glider", CategorySecurity},
		{"where do i follow glider", CategorySocial},
		{"how do messages work on glider", CategoryMessaging},
		{"how does the glider wallet work", CategoryWallet},
		{"tell me about workifi, how does it work", CategoryWorkspace},
		{"is there an ai bot for you", CategoryAIHub},
		{"how do i get started with glider", CategoryOnboarding},
		{"I'm new to glider, can you show me around", CategoryOnboarding},
		{"wallet", CategoryDefault},
		{"pizza", CategoryDefault},
		{"", CategoryDefault},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Classify(tt.input))
		})
	}
}

func TestRespond_GreetingWinsOverTopic(t *testing.T) {
	r := New()

	for _, in := range []string{"hey", "how's it going", "hi there, what about my wallet?"} {
		reply := r.Respond(in)
		assert.Equal(t, CategoryCasual, reply.Category, in)
		assert.Contains(t, replies[CategoryCasual], reply.Content, in)
	}
}

func TestRespond_ProductAndBareKeyword(t *testing.T) {
	r := New()

	product := r.Respond("what is glider?")
	assert.Contains(t, replies[CategoryProduct], product.Content)

	bare := r.Respond("wallet")
	assert.Equal(t, CategoryDefault, bare.Category)
	assert.Contains(t, replies[CategoryDefault], bare.Content)
	assert.NotContains(t, replies[CategoryWallet], bare.Content)
}

func TestRespond_OnboardingBeatsAssistant(t *testing.T) {
	r := New()

	reply := r.Respond("how do I get started with glider")
	assert.Equal(t, CategoryOnboarding, reply.Category)
	assert.Equal(t, replies[CategoryOnboarding][0], reply.Content)
}

func TestRespond_ChooserPinsVariant(t *testing.T) {
	for i, want := range replies[CategoryDefault] {
		r := New(WithChooser(fixedChooser(i)))
		assert.Equal(t, want, r.Respond("pizza").Content)
	}
}

func TestRespond_OutOfRangeChooserFallsBack(t *testing.T) {
	r := New(WithChooser(fixedChooser(-1)))
	assert.Equal(t, replies[CategoryThanks][0], r.Respond("thank you").Content)
}

func TestRespond_CustomRules(t *testing.T) {
	r := New(WithRules([]Rule{
		{Category: CategoryWallet, Match: func(s string) bool { return s == "wallet" }},
	}))
	assert.Equal(t, CategoryWallet, r.Respond("Wallet").Category)
	assert.Equal(t, CategoryDefault, r.Respond("what is glider?").Category)
}

func TestWelcome(t *testing.T) {
	r := New(WithChooser(fixedChooser(3)))

	w := r.Welcome()
	require.True(t, strings.HasPrefix(w, greetings[0]))
	assert.True(t, strings.HasSuffix(w, "• How secure is Glider?"))
	assert.Equal(t, w, r.Welcome(), "welcome must not be random")
}

func TestReplyPools(t *testing.T) {
	r := New()
	for _, rule := range DefaultRules() {
		n := len(r.Variants(rule.Category))
		assert.True(t, n >= 1 && n <= 5, "%s has %d variants", rule.Category, n)
	}
	assert.Len(t, r.Variants(CategoryDefault), 5)
}

func TestRespond_Concurrent(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Respond("what is glider?")
		}()
	}
	wg.Wait()
}

func TestRespond_SeededSourceIsDeterministic(t *testing.T) {
	a := New(WithChooser(rand.New(rand.NewPCG(7, 7))))
	b := New(WithChooser(rand.New(rand.NewPCG(7, 7))))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Respond("pizza").Content, b.Respond("pizza").Content)
	}
}
