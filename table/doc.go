// Package table is a headless table engine: it turns a slice of rows and a set of
// column definitions into header groups, a filtered row model and pages, without
// drawing anything.
//
// The engine owns no state of its own. The caller keeps the canonical [State]
// (global filter, column filters, pagination) and passes a snapshot on every
// [New]; operations that change state report the new value through the
// callbacks in [Options] instead of mutating the engine. This fits an
// immediate-mode UI, where the engine is rebuilt every frame:
//
//	tbl := table.New(table.Options[User]{
//	    Data:    users,
//	    Columns: columns,
//	    State:   st.TableState(),
//	    OnPaginationChange: func(p table.Pagination) {
//	        st.SetPagination(p.PageIndex, p.PageSize)
//	    },
//	})
//	for _, row := range tbl.RowModel().Rows {
//	    for _, cell := range row.VisibleCells() {
//	        draw(cell.Render())
//	    }
//	}
//	if tbl.CanNextPage() && nextClicked {
//	    tbl.NextPage()
//	}
//
// Filtering runs before pagination. Matching is case-insensitive and ignores
// diacritics, so "archive" finds "Archivé".
package table
