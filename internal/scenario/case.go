package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Op identifies the API operation a case exercises.
type Op string

const (
	OpPost Op = "post"
	OpLike Op = "like"
)

// Case is a single call to make against the target API. Post cases carry an
// author and content; like cases carry the id of the post to like. The id
// keeps whatever type the case was built with, so probes can send string,
// null, or out-of-range ids.
type Case struct {
	Op      Op
	Author  string
	Content string
	ID      interface{}
}

// Post builds a case that creates a post.
func Post(author, content string) Case {
	return Case{Op: OpPost, Author: author, Content: content}
}

// Like builds a case that likes the post with the given id.
func Like(id interface{}) Case {
	return Case{Op: OpLike, ID: id}
}

// Label returns the tag prefixed to the case's printed result line.
func (c Case) Label() string {
	if c.Op == OpLike {
		return "LIKE"
	}
	return "POST"
}

// Path returns the API path the case targets, relative to the base URL.
func (c Case) Path() string {
	if c.Op == OpLike {
		return "/api/like"
	}
	return "/api/posts"
}

type postBody struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

type likeBody struct {
	ID interface{} `json:"id"`
}

// Payload renders the JSON body the case sends.
func (c Case) Payload() ([]byte, error) {
	switch c.Op {
	case OpPost:
		return json.Marshal(postBody{Author: c.Author, Content: c.Content})
	case OpLike:
		return json.Marshal(likeBody{ID: c.ID})
	default:
		return nil, fmt.Errorf("unsupported op %q", c.Op)
	}
}

// Builtin returns the standard mixed-validity suite: two valid posts, three
// posts the server should reject (missing author, missing content, content
// over the 280 limit), a like for a post the run itself creates, a like with
// a non-integer id, and a like for a post that does not exist.
func Builtin() []Case {
	return []Case{
		Post("Alice", "Hello world!"),
		Post("Bob", "This is a test post."),
		Post("", "No author"),
		Post("Charlie", ""),
		Post("Dave", strings.Repeat("x", 300)),
		Like(1),
		Like("abc"),
		Like(999),
	}
}

// Repeat returns the case list repeated n times, preserving order within
// each pass.
func Repeat(cases []Case, n int) []Case {
	if n <= 1 || len(cases) == 0 {
		return cases
	}
	out := make([]Case, 0, len(cases)*n)
	for i := 0; i < n; i++ {
		out = append(out, cases...)
	}
	return out
}
