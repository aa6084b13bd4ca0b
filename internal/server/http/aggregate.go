package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"contentd/internal/strapi"
)

type homepageResponse struct {
	HeroBanner  strapi.HeroBannerData  `json:"heroBanner"`
	MidBanner   strapi.MidBannerData   `json:"midBanner"`
	Collections strapi.CollectionsData `json:"collections"`
	ExploreBlog strapi.BlogData        `json:"exploreBlog"`
}

// homepageHandler loads every homepage block concurrently; the first failure
// fails the whole page.
func homepageHandler(content Content) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var out homepageResponse
		g, gctx := errgroup.WithContext(c.UserContext())

		g.Go(func() error {
			var err error
			out.HeroBanner, err = content.HeroBanner(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			out.MidBanner, err = content.MidBanner(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			out.Collections, err = content.Collections(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			out.ExploreBlog, err = content.ExploreBlog(gctx)
			return err
		})

		if err := g.Wait(); err != nil {
			return upstreamError(c, "homepage", err)
		}
		return c.JSON(out)
	}
}
