package httpserver

import (
	"github.com/gofiber/fiber/v2"

	"contentd/internal/config"
	"contentd/pkg/cache"
	"contentd/pkg/cfg"
)

// RegisterRoutes mounts the content API, the revalidation hook and ops routes.
func RegisterRoutes(app *fiber.App, conf *config.Config, content Content, store cache.Store) {
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	if cfg.IsDev() {
		app.Get("/debug/config", func(c *fiber.Ctx) error { return c.JSON(conf.Redacted()) })
	}

	pages := conf.Strapi.PageTags()
	api := app.Group("/api")

	api.Get("/homepage", homepageHandler(content))
	api.Get("/homepage/hero-banner", serve("hero banner", content.HeroBanner))
	api.Get("/homepage/mid-banner", serve("mid banner", content.MidBanner))
	api.Get("/homepage/explore-blog", serve("explore blog", content.ExploreBlog))

	api.Get("/collections", serve("collections", content.Collections))
	api.Get("/products/variant-colors", serve("variant colors", content.ProductVariantColors))
	api.Get("/about-us", serve("about us", content.AboutUs))
	api.Get("/faq", serve("faq", content.FAQ))
	api.Get("/pages/:type", contentPageHandler(content, pages))

	// static blog routes must precede /blog/:slug
	api.Get("/blog", blogListHandler(content))
	api.Get("/blog/categories", serve("blog categories", content.BlogCategories))
	api.Get("/blog/slugs", serve("blog slugs", content.AllBlogSlugs))
	api.Get("/blog/:slug", blogPostHandler(content))

	api.Post("/revalidate", revalidateHandler(store, conf.Revalidate.Secret, pages))
}
