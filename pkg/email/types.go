package email

type Message struct {
	To       []string
	ReplyTo  string // optional; alerts set it to the signup's address
	Subject  string
	TextBody string
	HTMLBody string
}

// Field is one labelled value shown in an operator alert. Value may be a
// nested map or slice.
type Field struct {
	Key   string
	Value any
}
