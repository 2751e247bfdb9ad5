package models

import "time"

// Pick represents a user's saved 6-number selection.
// Numbers are stored sorted ascending.
type Pick struct {
	ID        int64     `db:"pick_id" json:"pick_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	DrawNo    *int      `db:"draw_no" json:"draw_no"` // target draw, NULL when not bound to one
	Numbers   [6]int    `db:"-" json:"numbers"`       // p1..p6
	CreatedAt time.Time `db:"reg_date" json:"pick_date"`
}
