package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"aiktp_sync/internal/domain"
	"aiktp_sync/internal/gateway"
)

const gmtLayout = "2006-01-02 15:04:05"

func gmt(t time.Time) string {
	if t.IsZero() {
		return "0000-00-00 00:00:00"
	}
	return t.UTC().Format(gmtLayout)
}

// thumbnailValue mirrors the sync client's expectation of false for no image.
func thumbnailValue(url string) any {
	if url == "" {
		return false
	}
	return url
}

func (s *Server) params(c *gin.Context) (*params, bool) {
	p, err := readParams(c)
	if err != nil {
		fail(c, fmt.Errorf("read request: %w", domain.ErrInvalidInput), nil)
		return nil, false
	}
	return p, true
}

func (s *Server) rejected(c *gin.Context, op string, err error) {
	if s.metrics != nil {
		var authErr *gateway.AuthError
		if errors.As(err, &authErr) {
			s.metrics.AuthRejections.WithLabelValues(op).Inc()
		}
	}
	fail(c, err, nil)
}

func (s *Server) createPost(c *gin.Context) {
	p, ok := s.params(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	call, err := s.gateway.Authorize(ctx, "createpost", p.token(), domain.CapEditPosts, domain.CapPublishPosts)
	if err != nil {
		s.rejected(c, "createpost", err)
		return
	}

	res, err := s.gateway.CreateRecord(ctx, call, gateway.CreateInput{
		Title:         p.String("title"),
		Content:       p.String("content"),
		Tags:          p.String("tags"),
		FeaturedImage: p.String("featuredImage"),
		CategoryIDs:   p.String("catId"),
		Status:        p.String("post_status"),
	})
	if err != nil {
		fail(c, err, nil)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordsCreated.WithLabelValues(string(res.RecordType)).Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"permalink": res.Permalink,
		"thumbnail": res.Thumbnail,
		"postId":    res.RecordID,
	})
}

func (s *Server) uploadImage(c *gin.Context) {
	p, ok := s.params(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	call, err := s.gateway.Authorize(ctx, "doUploadImageToWP", p.token(), domain.CapUploadFiles)
	if err != nil {
		s.rejected(c, "doUploadImageToWP", err)
		return
	}

	imgURL := p.String("imgURL")
	res, err := s.gateway.UploadMedia(ctx, call, p.Int64("postId"), imgURL)
	if err != nil {
		if s.metrics != nil {
			s.metrics.MediaIngested.WithLabelValues("failed").Inc()
		}
		if errors.Is(err, domain.ErrNetwork) || errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusOK, gin.H{"status": "error", "imgURL": imgURL})
			return
		}
		fail(c, err, gin.H{"imgURL": imgURL})
		return
	}
	if s.metrics != nil {
		s.metrics.MediaIngested.WithLabelValues("attached").Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "success",
		"postId":     res.RecordID,
		"imgURL":     res.ImageURL,
		"wp_baseURL": res.BaseURL,
		"baseUrl":    res.BaseURL,
	})
}

func (s *Server) getPostByURL(c *gin.Context) {
	p, ok := s.params(c)
	if !ok {
		return
	}

	view, err := s.gateway.GetByURL(c.Request.Context(), p.String("url"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": domain.NotPublicMessage})
		return
	}
	if err != nil {
		fail(c, err, nil)
		return
	}

	rec := view.Record
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"title":             rec.Title,
			"content":           rec.Body,
			"postId":            rec.ID,
			"post_name":         rec.Slug,
			"post_author":       rec.AuthorID,
			"post_date_gmt":     gmt(rec.CreatedAt),
			"post_modified_gmt": gmt(rec.ModifiedAt),
			"thumbnail":         thumbnailValue(view.Thumbnail),
			"link":              view.Permalink,
		},
	})
}

func (s *Server) getPostByID(c *gin.Context) {
	p, ok := s.params(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	call, err := s.gateway.Authorize(ctx, "getPostById", p.token())
	if err != nil {
		s.rejected(c, "getPostById", err)
		return
	}

	view, err := s.gateway.GetByID(ctx, call, p.Int64("postId"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": gateway.MsgRecordNotFound})
		return
	}
	if err != nil {
		fail(c, err, nil)
		return
	}

	rec := view.Record
	tags, images := view.Tags, view.Images
	if tags == nil {
		tags = []string{}
	}
	if images == nil {
		images = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"title":             rec.Title,
			"content":           rec.Body,
			"postId":            rec.ID,
			"post_name":         rec.Slug,
			"post_author":       rec.AuthorID,
			"post_date_gmt":     gmt(rec.CreatedAt),
			"post_modified_gmt": gmt(rec.ModifiedAt),
			"post_status":       rec.Status,
			"thumbnail":         thumbnailValue(view.Thumbnail),
			"tags":              tags,
			"images":            images,
			"link":              view.Permalink,
		},
	})
}

func (s *Server) getAllPosts(c *gin.Context) {
	p, ok := s.params(c)
	if !ok {
		return
	}

	list, err := s.gateway.ListAll(c.Request.Context(), p.Int("page", 1), p.Int("numberposts", s.cfg.PageSize))
	if err != nil {
		fail(c, err, nil)
		return
	}
	if len(list) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "error"})
		return
	}

	data := make([]gin.H, 0, len(list))
	for _, l := range list {
		data = append(data, gin.H{
			"postTitle":         l.Title,
			"link":              l.Permalink,
			"postId":            l.ID,
			"name":              l.Slug,
			"post_date_gmt":     gmt(l.CreatedAt),
			"post_modified_gmt": gmt(l.ModifiedAt),
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}

func (s *Server) getPostByTags(c *gin.Context) {
	p, ok := s.params(c)
	if !ok {
		return
	}

	list, err := s.gateway.ListByTag(c.Request.Context(), p.String("query"), p.Int("numberposts", s.cfg.TagLimit))
	if err != nil {
		fail(c, err, nil)
		return
	}

	posts := make([]gin.H, 0, len(list))
	for _, l := range list {
		posts = append(posts, gin.H{
			"postTitle": l.Title,
			"link":      l.Permalink,
			"name":      l.Slug,
			"postId":    l.ID,
		})
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "posts": posts})
}

func (s *Server) getCategories(c *gin.Context) {
	cats, err := s.gateway.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, err, nil)
		return
	}

	out := make([]gin.H, 0, len(cats))
	for _, cat := range cats {
		out = append(out, gin.H{"catId": cat.ID, "catName": cat.Name})
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "cats": out})
}

func (s *Server) checkToken(c *gin.Context) {
	p, ok := s.params(c)
	if !ok {
		return
	}

	candidate := p.String("tokenKey")
	if s.gateway.CheckToken(c.Request.Context(), candidate) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "tokenKey": candidate})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "error", "tokenKey": candidate, "msg": "Invalid token"})
}

func (s *Server) getToken(c *gin.Context) {
	tok, err := s.gateway.GetToken(c.Request.Context(), principalFrom(c))
	if err != nil {
		s.rejected(c, "getToken", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tok,
		"message": "Token retrieved successfully",
	})
}
