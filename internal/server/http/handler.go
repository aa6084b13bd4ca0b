package httpserver

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"contentd/internal/strapi"
)

// Content is the read side of the CMS consumed by the handlers.
type Content interface {
	HeroBanner(ctx context.Context) (strapi.HeroBannerData, error)
	MidBanner(ctx context.Context) (strapi.MidBannerData, error)
	Collections(ctx context.Context) (strapi.CollectionsData, error)
	ExploreBlog(ctx context.Context) (strapi.BlogData, error)
	ProductVariantColors(ctx context.Context) (strapi.VariantColorData, error)
	AboutUs(ctx context.Context) (strapi.AboutUsData, error)
	FAQ(ctx context.Context) (strapi.FAQData, error)
	ContentPage(ctx context.Context, contentType, tag string) (strapi.ContentPageData, error)
	BlogPosts(ctx context.Context, q strapi.BlogQuery) (strapi.BlogData, error)
	BlogCategories(ctx context.Context) (strapi.BlogCategoriesData, error)
	BlogPostBySlug(ctx context.Context, slug string) (strapi.BlogPost, error)
	AllBlogSlugs(ctx context.Context) ([]string, error)
}

// serve adapts a single accessor call into a JSON handler.
func serve[T any](name string, fn func(ctx context.Context) (T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := fn(c.UserContext())
		if err != nil {
			return upstreamError(c, name, err)
		}
		return c.JSON(v)
	}
}

func upstreamError(c *fiber.Ctx, name string, err error) error {
	reqLogger(c)("[contentd] %s %s: %s failed: %v", c.Method(), c.Path(), name, err)
	return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": "failed to fetch content"})
}

// contentPageHandler serves only the configured page types; pages maps each
// type to its cache tag.
func contentPageHandler(content Content, pages map[string]string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentType := c.Params("type")
		tag, ok := pages[contentType]
		if !ok {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}

		page, err := content.ContentPage(c.UserContext(), contentType, tag)
		if err != nil {
			return upstreamError(c, "content page "+contentType, err)
		}
		return c.JSON(page)
	}
}

func blogListHandler(content Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strapi.BlogQuery{
			SortBy:   c.Query("sort", strapi.SortNewest),
			Query:    c.Query("q"),
			Category: c.Query("category"),
		}

		posts, err := content.BlogPosts(c.UserContext(), q)
		if err != nil {
			return upstreamError(c, "blog posts", err)
		}
		return c.JSON(posts)
	}
}

func blogPostHandler(content Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")

		post, err := content.BlogPostBySlug(c.UserContext(), slug)
		if err != nil {
			return upstreamError(c, "blog post "+slug, err)
		}
		if post == nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		return c.JSON(fiber.Map{"data": post})
	}
}
