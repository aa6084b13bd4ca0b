package strapi

import "context"

// SortNewest orders entries by creation date, newest first.
const SortNewest = "createdAt:desc"

// BlogQuery narrows the blog listing. Empty fields are not sent.
type BlogQuery struct {
	SortBy   string
	Query    string
	Category string
}

func (c *Client) BlogPosts(ctx context.Context, bq BlogQuery) (BlogData, error) {
	if !c.enabled {
		return emptyBlogData(), nil
	}
	return fetch[BlogData](ctx, c, blogPostsEndpoint(bq), TagBlog)
}

func blogPostsEndpoint(bq BlogQuery) string {
	sortBy := bq.SortBy
	if sortBy == "" {
		sortBy = SortNewest
	}

	q := NewQuery().
		Populate("FeaturedImage", "Categories").
		Sort(sortBy).
		Limit(-1, 1000)
	if bq.Query != "" {
		q.Filter("$contains", bq.Query, "Title")
	}
	if bq.Category != "" {
		q.Filter("$eq", bq.Category, "Categories", "Slug")
	}
	return q.Endpoint("/api/blogs")
}

func (c *Client) BlogCategories(ctx context.Context) (BlogCategoriesData, error) {
	if !c.enabled {
		return emptyBlogCategoriesData(), nil
	}
	q := NewQuery().
		Sort(SortNewest).
		Limit(-1, 100)
	return fetch[BlogCategoriesData](ctx, c, q.Endpoint("/api/blog-post-categories"), TagBlogCategories)
}

// BlogPostBySlug returns the first post whose slug matches, or nil when none
// does. Slugs are trusted to be unique; extra matches are ignored.
func (c *Client) BlogPostBySlug(ctx context.Context, slug string) (BlogPost, error) {
	if !c.enabled {
		return nil, nil
	}
	q := NewQuery().
		Filter("$eq", slug, "Slug").
		PopulateAll()
	data, err := fetch[BlogData](ctx, c, q.Endpoint("/api/blogs"), BlogPostTag(slug))
	if err != nil {
		return nil, err
	}
	if len(data.Data) == 0 {
		return nil, nil
	}
	return data.Data[0], nil
}

// AllBlogSlugs lists the slug of every post, e.g. for static path generation.
func (c *Client) AllBlogSlugs(ctx context.Context) ([]string, error) {
	if !c.enabled {
		return []string{}, nil
	}
	q := NewQuery().PopulateAll()
	data, err := fetch[BlogData](ctx, c, q.Endpoint("/api/blogs"), TagBlogSlugs)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(data.Data))
	for _, p := range data.Data {
		slugs = append(slugs, p.Str("Slug"))
	}
	return slugs, nil
}
