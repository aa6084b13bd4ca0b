package httpserver

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"contentd/internal/strapi"
	"contentd/pkg/cache"
)

// revalidateRequest accepts both an explicit tag list and the body of a
// Strapi entry webhook.
type revalidateRequest struct {
	Tags  []string `json:"tags"`
	Event string   `json:"event"`
	Model string   `json:"model"`
	Entry struct {
		Slug string `json:"Slug"`
	} `json:"entry"`
}

// modelTags maps CMS content types to the cache tags built from them.
var modelTags = map[string][]string{
	"homepage":               {strapi.TagHeroBanner, strapi.TagMidBanner},
	"collection":             {strapi.TagCollections},
	"blog":                   {strapi.TagBlog, strapi.TagBlogSlugs, strapi.TagExploreBlog},
	"blog-post-category":     {strapi.TagBlogCategories, strapi.TagBlog},
	"product-variants-color": {strapi.TagVariantsColors},
	"about-us":               {strapi.TagAboutUs},
	"faq":                    {strapi.TagFAQ},
}

// tagsForModel returns the tags to drop when an entry of model changes.
// Configured content pages resolve through pages; other unknown models
// invalidate a tag named after the model.
func tagsForModel(model, slug string, pages map[string]string) []string {
	model = strings.TrimSpace(model)
	if model == "" {
		return nil
	}
	tags, ok := modelTags[model]
	if !ok {
		if tag, ok := pages[model]; ok {
			return []string{tag}
		}
		return []string{model}
	}
	out := append([]string{}, tags...)
	if model == "blog" && slug != "" {
		out = append(out, strapi.BlogPostTag(slug))
	}
	return out
}

func revalidateAuthorized(c *fiber.Ctx, secret string) bool {
	got := c.Get("X-Revalidate-Secret")
	if got == "" {
		got = strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
	}
	return got != "" && subtle.ConstantTimeCompare([]byte(got), []byte(secret)) == 1
}

// revalidateHandler drops every cached response carrying one of the
// requested tags so the next read goes to the CMS.
func revalidateHandler(store cache.Store, secret string, pages map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logReq := reqLogger(c)

		if secret == "" {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "revalidation disabled"})
		}
		if !revalidateAuthorized(c, secret) {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "invalid secret"})
		}

		var tags []string
		for _, t := range c.Context().QueryArgs().PeekMulti("tag") {
			tags = append(tags, string(t))
		}

		if body := c.Body(); len(body) > 0 {
			var req revalidateRequest
			if err := json.Unmarshal(body, &req); err != nil {
				return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
			}
			tags = append(tags, req.Tags...)
			tags = append(tags, tagsForModel(req.Model, req.Entry.Slug, pages)...)
		}

		tags = compactTags(tags)
		if len(tags) == 0 {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "no tags to revalidate"})
		}

		entries := 0
		if store != nil {
			n, err := store.InvalidateTags(c.UserContext(), tags...)
			if err != nil {
				logReq("[contentd][cache] invalidate tags=%v error: %v", tags, err)
				return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "invalidate failed"})
			}
			entries = n
		}

		logReq("[contentd][cache] revalidated tags=%v entries=%d", tags, entries)
		return c.JSON(fiber.Map{"revalidated": true, "tags": tags, "entries": entries})
	}
}

func compactTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
