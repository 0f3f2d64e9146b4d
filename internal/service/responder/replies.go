package responder

// greetings opens every chat session. Only the first entry is used today;
// the rest are kept for a rotating welcome.
var greetings = []string{
	"Hey there! I'm your Glider AI assistant, here to help you navigate the future of decentralized communication and productivity. What's on your mind today? 🚀",
	"Welcome to Glider! I'm your AI co-pilot in this decentralized ecosystem. Whether you're here for messaging, crypto, or workspaces, I've got you covered. What would you like to explore first?",
	"Hi! I'm Glider AI, your guide to a more private, connected digital life. I can help you with anything from secure messaging to managing your crypto assets. What would you like to do?",
	"Hello! I'm your personal AI assistant in the Glider ecosystem. I'm here to help you communicate, collaborate, and transact with complete privacy. How can I assist you today?",
	"Hey! I'm Glider AI, your partner in the decentralized web. Whether you're new here or a power user, I'm ready to help you make the most of our platform. What would you like to know?",
}

var replies = map[Category][]string{
	CategoryCasual: {
		"I'm doing great, thanks for asking! I'm here to help you explore Glider. What can I assist you with today?",
		"Hello there! I'm doing well. How about you? What brings you to Glider?",
		"Hi! I'm just a bunch of code, but I'm excited to help you with anything about Glider. What would you like to know?",
		"Hey! I'm here and ready to assist you with Glider. What's on your mind?",
	},
	CategoryIdentity: {
		"I'm Glider AI, your personal assistant for all things related to the Glider platform. Nice to meet you! How can I help you today?",
		"You can call me Glider AI. I'm here to help you navigate our decentralized ecosystem. What would you like to explore?",
		"I'm your Glider assistant! I help users like you get the most out of our platform. What can I help you with?",
	},
	CategoryThanks: {
		"You're welcome! Is there anything else I can help you with in Glider?",
		"Happy to help! Let me know if you have any other questions about the platform.",
		"Anytime! That's what I'm here for. What else would you like to know?",
		"No problem at all! If you need anything else, just ask!",
	},
	CategoryHelp: {
		"I'm here to help! I can assist you with messaging, your wallet, workspaces, or any other Glider features. What do you need help with?",
		"I'd be happy to help! I can explain how to use Glider, help with transactions, or answer any questions you have. What would you like to know?",
		"I'm your Glider assistant! I can help you with secure messaging, crypto transactions, workspaces, and more. What do you need assistance with?",
	},
	CategoryProduct: {
		"Glider is a fundamental shift in how we interact online - it's a decentralized social and productivity ecosystem where you're in complete control. Unlike traditional platforms, Glider combines secure messaging, multi-chain crypto wallets, collaborative workspaces, and AI assistance into one seamless experience where privacy and ownership are built-in by design.",
		"Imagine a world where your digital life isn't scattered across a dozen different platforms, but unified in one secure environment you control. That's Glider - a decentralized platform where your messages are private, your identity is yours, and your data stays with you. It's the future of how we'll work, communicate, and transact online.",
		"Glider is like having your own private digital nation - complete with its own economy, communication systems, and governance. It's where Web3 meets practical daily use, giving you the power of blockchain without the complexity. Whether you're sending a message, making a payment, or collaborating on a project, everything happens in one secure, private space.",
		"At its core, Glider is about giving power back to users. It's a complete rethinking of how we interact online - where you're not just a user, but a sovereign individual. With encrypted communications, self-custodial wallets, and decentralized infrastructure, Glider puts you in control of your digital life in ways traditional platforms never could.",
	},
	CategoryFeatures: {
		"Let me break down what makes Glider special:\n\n🔒 *Privacy First*\n- End-to-end encrypted everything (messages, files, calls)\n- Decentralized storage where you control access\n- No data harvesting or tracking\n\n💬 *Communication*\n- Private 1:1 and group messaging\n- Encrypted voice/video calls\n- Decentralized social networking\n- Built-in crypto transfers in chat\n\n🔗 *Web3 Integration*\n- Multi-chain wallet (Solana, Ethereum, Polygon+)\n- Send/receive crypto and NFTs in chat\n- Sign transactions securely\n- Connect to dApps\n\n💼 *Workifi Workspace*\n- Encrypted email and docs\n- Secure video meetings\n- Collaborative tools\n- Task management\n\n🤖 *AI Assistant*\n- Privacy-focused help across all features\n- Message summarization\n- Smart replies\n- Workflow automation\n\n🌐 *And More*\n- Cross-platform availability\n- Open source foundation\n- User-controlled identity\n- No platform lock-in",
	},
	CategorySecurity: {
		"Security isn't just a feature at Glider - it's the foundation. Here's how we protect you:\n\n🔐 *Encryption Everywhere*\n- End-to-end encryption for all messages and files\n- Encrypted metadata to protect who you talk to and when\n- Encrypted storage for all your data\n\n🔑 *Key Management*\n- You control your private keys (we never see them)\n- Hardware wallet support for maximum security\n- Secure key backup and recovery options\n\n🌐 *Decentralized Infrastructure*\n- No central point of failure\n- Distributed storage of encrypted data\n- Open-source code that anyone can audit\n\n🛡️ *Privacy Protections*\n- No tracking or behavioral profiling\n- Minimal metadata collection\n- Local AI processing when possible\n- Clear data controls and permissions",
	},
	CategorySocial: {
		"Glider's social layer is where Web3 meets real social interaction. Unlike traditional platforms:\n\n👤 *Your Identity, Your Rules*\n- Truly own your profile and connections\n- Portable identity that works across apps\n- Verified on-chain credentials\n\n🌱 *Genuine Connections*\n- No algorithms deciding who sees your posts\n- Direct relationships with your audience\n- Community-owned spaces, not corporate feeds\n\n💎 *Value to Creators*\n- Direct monetization without middlemen\n- NFT-gated communities\n- Transparent supporter relationships\n\n🛡️ *Privacy First*\n- Share what you want, with who you want\n- No shadow profiles or hidden tracking\n- Control over your social graph",
	},
	CategoryMessaging: {
		"Glider's messaging is where secure communication meets Web3 functionality. Here's what makes it special:\n\n💬 *Private by Design*\n- End-to-end encrypted messages and calls\n- Disappearing messages with self-destruct timers\n- Secure file sharing with encryption\n- No message scanning or data mining\n\n💰 *Crypto-Native*\n- Send/receive crypto in any chat\n- Request and split payments\n- Sign transactions securely\n- View NFTs and tokens in-line\n\n👥 *Group Features*\n- Encrypted group chats\n- Admin controls and permissions\n- Custom emojis and reactions\n- Pinned messages and announcements\n\n🌐 *Seamless Experience*\n- Cross-device sync\n- Message search and history\n- Custom notifications\n- Read receipts and typing indicators",
	},
	CategoryWallet: {
		"Your Glider wallet is your passport to Web3, built right into the platform. Key features include:\n\n🔗 *Multi-Chain Support*\n- Native support for Solana, Ethereum, Polygon, and more\n- Unified view of all your assets\n- Easy switching between networks\n\n💳 *Spend & Manage*\n- Send/receive crypto in chats\n- Buy/sell/swap with best rates\n- Track portfolio performance\n- View NFT collections\n\n🔒 *Security First*\n- Non-custodial - your keys, your crypto\n- Hardware wallet compatible\n- Transaction previews\n- Phishing protection\n\n🔄 *DeFi & dApps*\n- Connect to any Web3 app\n- Stake and earn yield\n- Bridge between chains\n- Sign messages and transactions",
	},
	CategoryWorkspace: {
		"Workifi is your private, decentralized workspace in the Glider ecosystem. It's where productivity meets privacy:\n\n📧 *Secure Communication*\n- Encrypted email with blockchain verification\n- Private team messaging channels\n- Secure file sharing with access controls\n\n💼 *Collaboration Tools*\n- Real-time document editing\n- Task and project management\n- Shared calendars and scheduling\n- Whiteboard and brainstorming tools\n\n🎥 *Meetings & Calls*\n- End-to-end encrypted video calls\n- Screen sharing and collaboration\n- Meeting recordings (encrypted)\n- Virtual workspaces\n\n🔐 *Data Control*\n- Client-side encryption for all files\n- Granular permission settings\n- Self-hosted option for enterprises\n- Full data portability",
	},
	CategoryAIHub: {
		"Glider's AI is your private assistant across the entire platform. Here's what makes it special:\n\n🤖 *Your Private Assistant*\n- On-device processing when possible\n- No data leaves your control\n- Works across all Glider features\n- Learns your preferences (if you want it to)\n\n💡 *Smart Features*\n- Message and email drafting\n- Document summarization\n- Meeting notes and action items\n- Research assistance\n- Code help and explanations\n\n🔍 *Web3 Superpowers*\n- Transaction explanations\n- Portfolio insights\n- Smart contract analysis\n- Security alerts\n- Gas optimization tips\n\n⚙️ *Complete Control*\n- Toggle features on/off\n- Adjust privacy levels\n- View and manage training data\n- Open-source models",
	},
	CategoryOnboarding: {
		"Welcome to Glider! Let's get you started on your decentralized journey:\n\n1. *Create Your Account*\n   - Download the Glider app\n   - Set up your decentralized identity\n   - Secure with 2FA and recovery options\n\n2. *Set Up Your Wallet*\n   - Create a new wallet or import existing\n   - Add some crypto (SOL, ETH, etc.)\n   - Explore your wallet interface\n\n3. *Connect & Explore*\n   - Find and connect with friends\n   - Join communities that interest you\n   - Try sending your first encrypted message\n\n4. *Discover More*\n   - Set up your Workifi workspace\n   - Try a secure video call\n   - Explore dApps in the ecosystem\n\nWould you like me to guide you through any of these steps in more detail?",
	},
	CategoryDefault: {
		"I'm here to help you navigate Glider's decentralized ecosystem. Whether you're looking to send secure messages, manage crypto, collaborate with your team, or explore Web3, I've got you covered. What would you like to do?",
		"I'm your Glider assistant, here to help you make the most of our platform. You can ask me about messaging, your wallet, workspaces, or anything else about Glider. What's on your mind?",
		"I'm here to help you with all things Glider. Whether you're new to decentralized platforms or a Web3 pro, I can help you with secure messaging, crypto transactions, private workspaces, and more. What would you like to know?",
		"Welcome! I'm your guide to Glider's decentralized world. From private messaging to managing your crypto to collaborating securely, I'm here to help. What would you like to explore first?",
		"Hey there! I'm your personal assistant for everything Glider. Whether you need help with the basics or want to explore advanced features, just ask. What can I help you with today?",
	},
}
