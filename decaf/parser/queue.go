package parser

// TokenQueue is the FIFO stream of tokens handed from the lexer to the
// parser. The parser owns the queue for the whole parse and drains it
// destructively; there is no pushback.
type TokenQueue struct {
	tokens []Token
	head   int
}

func NewTokenQueue(tokens ...Token) *TokenQueue {
	return &TokenQueue{tokens: tokens}
}

func (q *TokenQueue) IsEmpty() bool {
	return q.head >= len(q.tokens)
}

func (q *TokenQueue) Len() int {
	return len(q.tokens) - q.head
}

// Peek returns the next token without removing it. The queue must not be
// empty.
func (q *TokenQueue) Peek() Token {
	return q.tokens[q.head]
}

// Remove returns the next token and removes it from the queue. The queue
// must not be empty.
func (q *TokenQueue) Remove() Token {
	tok := q.tokens[q.head]
	q.head++
	return tok
}

func (q *TokenQueue) Add(tok Token) {
	q.tokens = append(q.tokens, tok)
}
