package strapi

// Fallbacks served while the CMS is disabled. Each call builds a fresh value.

func emptyBlogData() BlogData {
	p := DefaultPagination()
	return BlogData{Data: []Record{}, Meta: &Meta{Pagination: &p}}
}

func emptyBlogCategoriesData() BlogCategoriesData {
	p := DefaultPagination()
	return BlogCategoriesData{Data: []Record{}, Meta: &Meta{Pagination: &p}}
}

func emptyCollectionsData() CollectionsData {
	return CollectionsData{Data: []Record{}}
}

func emptyVariantColorData() VariantColorData {
	return VariantColorData{Data: []Record{}}
}

func emptyHomepageData() HeroBannerData {
	return HeroBannerData{Data: Record{}}
}

func emptyAboutUsData() AboutUsData {
	return AboutUsData{Data: Record{}}
}

func emptyFAQData() FAQData {
	return FAQData{Data: Record{"FAQSection": []any{}}}
}

func emptyContentPageData() ContentPageData {
	return ContentPageData{Data: Record{"PageContent": ""}}
}
