package store

// clampPage normalizes caller paging input before it reaches a query, so a
// zero or negative page can never become a negative OFFSET. Defaults match
// utils.CreatePagination.
func clampPage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return page, pageSize
}
