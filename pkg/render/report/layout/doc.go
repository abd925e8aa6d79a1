// Package layout places kit tables on two-column A4 pages.
//
// Layout runs before any drawing. For each kit section the [Estimator]
// predicts a [Footprint]: the wrapped caption lines, the table rows, the
// wrapped blocked-item lines and the total height. The [Planner] then assigns
// the footprint a [Placement] (page, column, top Y) without overlapping
// anything already placed, asking its [Pager] for a fresh page when neither
// column has room.
//
// # Coordinates
//
// Everything is in PDF points, origin at the bottom-left of the page. Column
// cursors start just below the header and move down; a column is full when
// its cursor reaches the footer reserve above the bottom margin.
//
// # Safety policy
//
// Overlap can only come from under-estimation, so the estimator adds a small
// constant margin to every footprint and the renderer draws from the same
// footprint it was measured with. The planner additionally requires a
// minimum slack below every section and pads every cursor advance.
package layout
