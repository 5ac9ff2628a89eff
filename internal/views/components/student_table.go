package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"student-manager/internal/models"
)

var studentColumns = []string{"ID", "Name", "Course", "Email", "Grade"}

var studentColumnWidths = []float32{80, 140, 170, 190, 100}

// StudentTable lists students and offers refresh, delete and export actions
type StudentTable struct {
	container     *fyne.Container
	table         *widget.Table
	refreshButton *widget.Button
	deleteButton  *widget.Button
	exportButton  *widget.Button

	rows        []models.Student
	selectedRow int

	refreshHandler func()
	deleteHandler  func(row int)
	exportHandler  func()
}

func NewStudentTable() *StudentTable {
	st := &StudentTable{selectedRow: -1}
	st.createComponents()
	st.buildLayout()
	st.setupEventHandlers()
	return st
}

func (st *StudentTable) createComponents() {
	st.table = widget.NewTable(
		func() (int, int) {
			return len(st.rows), len(studentColumns)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			cell.(*widget.Label).SetText(st.cellText(id.Row, id.Col))
		},
	)
	st.table.ShowHeaderRow = true
	st.table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	st.table.UpdateHeader = func(id widget.TableCellID, header fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(studentColumns) {
			header.(*widget.Label).SetText(studentColumns[id.Col])
		}
	}
	for col, width := range studentColumnWidths {
		st.table.SetColumnWidth(col, width)
	}

	st.refreshButton = widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), nil)
	st.deleteButton = widget.NewButtonWithIcon("Delete Selected", theme.DeleteIcon(), nil)
	st.deleteButton.Importance = widget.DangerImportance
	st.exportButton = widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), nil)
}

func (st *StudentTable) buildLayout() {
	st.container = container.NewBorder(
		nil,
		container.NewCenter(container.NewHBox(st.refreshButton, st.deleteButton, st.exportButton)),
		nil,
		nil,
		st.table,
	)
}

func (st *StudentTable) setupEventHandlers() {
	st.table.OnSelected = func(id widget.TableCellID) {
		st.selectedRow = id.Row
	}
	st.table.OnUnselected = func(widget.TableCellID) {
		st.selectedRow = -1
	}

	st.refreshButton.OnTapped = func() {
		if st.refreshHandler != nil {
			st.refreshHandler()
		}
	}
	st.deleteButton.OnTapped = func() {
		if st.deleteHandler != nil {
			st.deleteHandler(st.selectedRow)
		}
	}
	st.exportButton.OnTapped = func() {
		if st.exportHandler != nil {
			st.exportHandler()
		}
	}
}

func (st *StudentTable) cellText(row, col int) string {
	if row < 0 || row >= len(st.rows) {
		return ""
	}
	s := st.rows[row]
	switch col {
	case 0:
		return s.ID
	case 1:
		return s.Name
	case 2:
		return s.Course
	case 3:
		return s.Email
	case 4:
		return string(s.Grade)
	}
	return ""
}

// SetRefreshHandler sets the refresh button handler
func (st *StudentTable) SetRefreshHandler(handler func()) {
	st.refreshHandler = handler
}

// SetDeleteHandler sets the delete handler; it receives -1 when nothing is selected
func (st *StudentTable) SetDeleteHandler(handler func(row int)) {
	st.deleteHandler = handler
}

// SetExportHandler sets the export button handler
func (st *StudentTable) SetExportHandler(handler func()) {
	st.exportHandler = handler
}

// SetStudents redraws the table from a snapshot and drops the selection
func (st *StudentTable) SetStudents(students []models.Student) {
	st.rows = students
	st.table.UnselectAll()
	st.selectedRow = -1
	st.table.Refresh()
}

// SelectRow selects a data row as if the user clicked it
func (st *StudentTable) SelectRow(row int) {
	st.table.Select(widget.TableCellID{Row: row, Col: 0})
}

// SelectedRow returns the selected row or -1
func (st *StudentTable) SelectedRow() int {
	return st.selectedRow
}

// RowCount returns the number of displayed students
func (st *StudentTable) RowCount() int {
	return len(st.rows)
}

// GetContainer returns the table container
func (st *StudentTable) GetContainer() *fyne.Container {
	return st.container
}
