package strapi

import "context"

func (c *Client) HeroBanner(ctx context.Context) (HeroBannerData, error) {
	if !c.enabled {
		return emptyHomepageData(), nil
	}
	q := NewQuery().Populate("HeroBanner", "HeroBanner.CTA", "HeroBanner.Image")
	return fetch[HeroBannerData](ctx, c, q.Endpoint("/api/homepage"), TagHeroBanner)
}

func (c *Client) MidBanner(ctx context.Context) (MidBannerData, error) {
	if !c.enabled {
		return emptyHomepageData(), nil
	}
	q := NewQuery().Populate("MidBanner", "MidBanner.CTA", "MidBanner.Image")
	return fetch[MidBannerData](ctx, c, q.Endpoint("/api/homepage"), TagMidBanner)
}

func (c *Client) Collections(ctx context.Context) (CollectionsData, error) {
	if !c.enabled {
		return emptyCollectionsData(), nil
	}
	q := NewQuery().PopulateAll()
	return fetch[CollectionsData](ctx, c, q.Endpoint("/api/collections"), TagCollections)
}

// ExploreBlog returns the three newest posts for the homepage teaser.
func (c *Client) ExploreBlog(ctx context.Context) (BlogData, error) {
	if !c.enabled {
		return emptyBlogData(), nil
	}
	q := NewQuery().
		Populate("FeaturedImage").
		Sort(SortNewest).
		Limit(0, 3)
	return fetch[BlogData](ctx, c, q.Endpoint("/api/blogs"), TagExploreBlog)
}

func (c *Client) ProductVariantColors(ctx context.Context) (VariantColorData, error) {
	if !c.enabled {
		return emptyVariantColorData(), nil
	}
	q := NewQuery().
		Populate("Type", "Type.Image").
		Limit(0, 100)
	return fetch[VariantColorData](ctx, c, q.Endpoint("/api/product-variants-colors"), TagVariantsColors)
}

func (c *Client) AboutUs(ctx context.Context) (AboutUsData, error) {
	if !c.enabled {
		return emptyAboutUsData(), nil
	}
	q := NewQuery().Populate(
		"Banner",
		"OurStory.Image",
		"OurCraftsmanship.Image",
		"WhyUs.Tile.Image",
		"Numbers",
	)
	return fetch[AboutUsData](ctx, c, q.Endpoint("/api/about-us"), TagAboutUs)
}

func (c *Client) FAQ(ctx context.Context) (FAQData, error) {
	if !c.enabled {
		return emptyFAQData(), nil
	}
	q := NewQuery().Populate("FAQSection", "FAQSection.Question")
	return fetch[FAQData](ctx, c, q.Endpoint("/api/faq"), TagFAQ)
}

// ContentPage fetches a single-type page such as "privacy-policy" under the
// caller's cache tag.
func (c *Client) ContentPage(ctx context.Context, contentType, tag string) (ContentPageData, error) {
	if !c.enabled {
		return emptyContentPageData(), nil
	}
	q := NewQuery().PopulateAll()
	return fetch[ContentPageData](ctx, c, q.Endpoint("/api/"+contentType), tag)
}
