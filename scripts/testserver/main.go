// Command testserver runs a small in-memory microblog API for local
// postvolley runs: POST /api/posts creates posts, POST /api/like likes
// them, and GET /api/posts lists everything created so far.
package main

import (
	"flag"
	"fmt"
	"math"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const maxContentLength = 280

type post struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
}

type store struct {
	mu     sync.Mutex
	nextID int
	posts  []*post
	byID   map[int]*post
}

func newStore() *store {
	return &store{nextID: 1, byID: map[int]*post{}}
}

func (s *store) create(author, content string) post {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &post{ID: s.nextID, Author: author, Content: content}
	s.nextID++
	s.posts = append(s.posts, p)
	s.byID[p.ID] = p
	return *p
}

func (s *store) like(id int) (post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	if !ok {
		return post{}, false
	}
	p.Likes++
	return *p, true
}

func (s *store) list() []post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out
}

func main() {
	port := flag.Int("port", 5000, "listening port")
	seed := flag.Int("seed", 0, "number of posts to create at startup")
	flag.Parse()

	s := newStore()
	for i := 0; i < *seed; i++ {
		s.create(fmt.Sprintf("seed-%d", i+1), "seeded post")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.POST("/api/posts", handleCreatePost(s))
	e.POST("/api/like", handleLike(s))
	e.GET("/api/posts", handleListPosts(s))

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", *port)))
}

func handleCreatePost(s *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body struct {
			Author  string `json:"author"`
			Content string `json:"content"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		}
		if body.Author == "" || body.Content == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "author and content are required"})
		}
		if len([]rune(body.Content)) > maxContentLength {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("content exceeds %d characters", maxContentLength),
			})
		}
		return c.JSON(http.StatusCreated, s.create(body.Author, body.Content))
	}
}

func handleLike(s *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body struct {
			ID interface{} `json:"id"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		}
		id, ok := asPostID(body.ID)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "id must be an integer"})
		}
		p, found := s.like(id)
		if !found {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"liked": true,
			"id":    p.ID,
			"likes": p.Likes,
		})
	}
}

func handleListPosts(s *store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"posts": s.list()})
	}
}

// asPostID accepts only integral JSON numbers as post ids.
func asPostID(v interface{}) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
