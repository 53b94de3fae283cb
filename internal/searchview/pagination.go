package searchview

// ItemsPerPage is the number of result cards on one page.
const ItemsPerPage = 9

// TotalPages returns ceil(count / ItemsPerPage).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	return (count + ItemsPerPage - 1) / ItemsPerPage
}

// ClampPage limits page to [1, total], page 1 when there are no pages.
func ClampPage(page, total int) int {
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}

// PageSlice returns items[(page-1)*ItemsPerPage : page*ItemsPerPage], bounded by len(items).
func PageSlice[T any](items []T, page int) []T {
	if page < 1 {
		return nil
	}

	start := (page - 1) * ItemsPerPage
	if start >= len(items) {
		return nil
	}
	end := min(start+ItemsPerPage, len(items))

	return items[start:end]
}
