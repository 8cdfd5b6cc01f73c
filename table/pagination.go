package table

// PageCount is the number of pages of filtered rows; zero when nothing
// matches.
func (t *Table[T]) PageCount() int {
	n := t.FilteredRowModel().Len()
	size := t.opts.State.Pagination.size()
	return (n + size - 1) / size
}

// pageIndex is the stored page index clamped to the current page count.
func (t *Table[T]) pageIndex() int {
	return clampPage(t.opts.State.Pagination.PageIndex, t.PageCount())
}

func clampPage(index, pageCount int) int {
	if index >= pageCount {
		index = pageCount - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

// Pagination returns the effective cursor: the page index clamped into range
// and the page size defaulted. When it differs from the stored state,
// ClampPagination reports it back.
func (t *Table[T]) Pagination() Pagination {
	return Pagination{PageIndex: t.pageIndex(), PageSize: t.opts.State.Pagination.size()}
}

// ClampPagination reports the effective cursor through OnPaginationChange if
// the stored one is out of range, for example after filtering removed the
// current page.
func (t *Table[T]) ClampPagination() {
	t.setPagination(t.Pagination())
}

// CanPreviousPage reports whether a page exists before the current one.
func (t *Table[T]) CanPreviousPage() bool {
	return t.pageIndex() > 0
}

// CanNextPage reports whether a page exists after the current one.
func (t *Table[T]) CanNextPage() bool {
	return t.pageIndex()+1 < t.PageCount()
}

// PreviousPage moves back one page. It is a no-op on the first page.
func (t *Table[T]) PreviousPage() {
	if !t.CanPreviousPage() {
		return
	}
	t.SetPageIndex(t.pageIndex() - 1)
}

// NextPage moves forward one page. It is a no-op on the last page.
func (t *Table[T]) NextPage() {
	if !t.CanNextPage() {
		return
	}
	t.SetPageIndex(t.pageIndex() + 1)
}

// FirstPage moves to page 0.
func (t *Table[T]) FirstPage() {
	t.SetPageIndex(0)
}

// LastPage moves to the final page.
func (t *Table[T]) LastPage() {
	t.SetPageIndex(t.PageCount() - 1)
}

// ResetPageIndex moves back to page 0.
func (t *Table[T]) ResetPageIndex() {
	t.SetPageIndex(0)
}

// SetPageIndex moves to index, clamped into range.
func (t *Table[T]) SetPageIndex(index int) {
	t.setPagination(Pagination{
		PageIndex: clampPage(index, t.PageCount()),
		PageSize:  t.opts.State.Pagination.size(),
	})
}

// SetPageSize changes the page size, keeping the first row of the current
// page visible.
func (t *Table[T]) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	top := t.pageIndex() * t.opts.State.Pagination.size()
	t.setPagination(Pagination{PageIndex: top / size, PageSize: size})
}

func (t *Table[T]) setPagination(p Pagination) {
	if p == t.opts.State.Pagination {
		return
	}
	t.opts.State.Pagination = p
	if t.opts.OnPaginationChange != nil {
		t.opts.OnPaginationChange(p)
	}
}
