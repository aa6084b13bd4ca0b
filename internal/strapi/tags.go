package strapi

// Cache tags attached to each accessor. Revalidation hooks invalidate these.
const (
	TagHeroBanner     = "hero-banner"
	TagMidBanner      = "mid-banner"
	TagCollections    = "collections-main"
	TagExploreBlog    = "explore-blog"
	TagVariantsColors = "variants-colors"
	TagAboutUs        = "about-us"
	TagFAQ            = "faq"
	TagBlog           = "blog"
	TagBlogCategories = "blog-categories"
	TagBlogSlugs      = "blog-slugs"
)

// BlogPostTag is the tag of a single post looked up by slug.
func BlogPostTag(slug string) string {
	return "blog-" + slug
}
