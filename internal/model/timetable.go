package model

// TimetableEntry is one cell of the weekly timetable grid. A user has at
// most one subject per (day, slot) pair; saving overwrites the cell.
type TimetableEntry struct {
	ID      uint   `gorm:"primaryKey"`
	UserID  uint   `gorm:"index:idx_user_day_slot,unique"`
	Day     string `gorm:"index:idx_user_day_slot,unique"`
	Slot    string `gorm:"index:idx_user_day_slot,unique"`
	Subject string
}
