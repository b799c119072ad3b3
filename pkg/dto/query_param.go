package dto

// CategoryProductFilter carries the query parameters of the category page
// endpoint. Paging is one-based there.
type CategoryProductFilter struct {
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	PageNo    int    `query:"pageNo"`
	PageSize  int    `query:"pageSize"`
}

// ProductFilter carries the query parameters of the flat product listing,
// which is zero-based and spells the size parameter differently. The two
// endpoints disagree on purpose; callers rely on both shapes.
type ProductFilter struct {
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	PageNo    int    `query:"pageNo"`
	PageSize  int    `query:"pagesize"`
}
