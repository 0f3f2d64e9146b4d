package responder

import "regexp"

// Topic rules pair a keyword group with an anchor group in either order,
// so a bare keyword such as "wallet" does not match on its own.
var (
	casualPattern   = regexp.MustCompile(`^(how are you|how's it going|how are things|what's up|sup|hey|hi|hello|greetings?|yo|what's new|howdy|good (morning|afternoon|evening)|h[ie]y there)\b`)
	identityPattern = regexp.MustCompile(`(what'?s|what is) (your|ur) name\??$|who are you\??$`)
	thanksPattern   = regexp.MustCompile(`(thanks|thank you|appreciate it|cheers|ty|thx|grateful|i appreciate)`)
	helpPattern     = regexp.MustCompile(`(help|support|what can you do|what do you do|how does this work|how to use|tutorial)`)

	productPattern   = regexp.MustCompile(`(what|tell me about|explain|who is|what is).*glider`)
	featuresPattern  = regexp.MustCompile(`features?|what can.*do|capabilities?|show me what glider can do`)
	securityPattern  = regexp.MustCompile(`(secure|security|privacy|safe|encryption|how safe|private).*(glider|data|messages?|wallet|chats?|crypto|transactions?|files?|documents?|meetings?|email|workifi|ai|assistant)|(glider|your).*(secure|safe|private|encrypt)`)
	socialPattern    = regexp.MustCompile(`(social|profile|community|communities|follow|following|feed|post|share|like|comment|reputation).*(glider|how|what)|(glider|your).*(social|community|profile|follow|feed)`)
	messagingPattern = regexp.MustCompile(`(message|chat|talk|conversation|dm|direct message|group chat).*(glider|how|what)|(glider|your).*(message|chat|talk|conversation|dm|group)`)
	walletPattern    = regexp.MustCompile(`(` + walletTerms + `).*(glider|how|what)|(glider|your).*(` + walletTerms + `)`)
	workspacePattern = regexp.MustCompile(`(` + workspaceTerms + `).*(glider|how|what)|(glider|your).*(` + workspaceTerms + `)`)
	assistantPattern = regexp.MustCompile(`(ai|assistant|bot|chatbot|help|support|how to|how do i|can you|what can you do|what should i do|what's next|get started|begin|start using|new to glider).*(glider|you)|(glider|you).*(ai|assistant|bot|chatbot|help|support|how to|how do i|can you|what can you do)`)

	onboardingPattern = regexp.MustCompile(`(get started|begin|start using|new to glider|first time|how to start|onboard|tutorial)`)
)

const (
	walletTerms    = `wallet|crypto|nft|token|blockchain|defi|ethereum|solana|polygon|bitcoin|btc|eth|sol|matic|send money|receive money|transaction|pay|payment`
	workspaceTerms = `workifi|workspace|work|productivity|task|project|meeting|email|document|file|collaborat(e|ion)|team`
)

// Rule maps a predicate on normalized text to a reply category.
type Rule struct {
	Category Category
	Match    func(text string) bool
}

func matches(re *regexp.Regexp) func(string) bool {
	return re.MatchString
}

func allOf(preds ...func(string) bool) func(string) bool {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// DefaultRules is evaluated top to bottom; the first match wins. Anything
// unmatched falls through to CategoryDefault.
func DefaultRules() []Rule {
	return []Rule{
		{Category: CategoryCasual, Match: matches(casualPattern)},
		{Category: CategoryIdentity, Match: matches(identityPattern)},
		{Category: CategoryThanks, Match: matches(thanksPattern)},
		{Category: CategoryHelp, Match: matches(helpPattern)},
		{Category: CategoryProduct, Match: matches(productPattern)},
		{Category: CategoryFeatures, Match: matches(featuresPattern)},
		{Category: CategorySecurity, Match: matches(securityPattern)},
		{Category: CategorySocial, Match: matches(socialPattern)},
		{Category: CategoryMessaging, Match: matches(messagingPattern)},
		{Category: CategoryWallet, Match: matches(walletPattern)},
		{Category: CategoryWorkspace, Match: matches(workspacePattern)},
		// Onboarding questions are assistant questions too; this guard must stay
		// directly above the generic assistant rule.
		{Category: CategoryOnboarding, Match: allOf(matches(assistantPattern), matches(onboardingPattern))},
		{Category: CategoryAIHub, Match: matches(assistantPattern)},
	}
}
