package entities

import "time"

type Donation struct {
	ID             uint       `json:"id" gorm:"primaryKey;column:id"`
	UserID         string     `json:"user_id" gorm:"column:user_id;type:uuid;index;not null"`
	Comment        string     `json:"comment,omitempty" gorm:"column:comment;type:text"`
	FullAmount     int64      `json:"full_amount" gorm:"column:full_amount;not null"`
	InvestedAmount int64      `json:"invested_amount" gorm:"column:invested_amount;not null;default:0"`
	FullyInvested  bool       `json:"fully_invested" gorm:"column:fully_invested;not null;default:false"`
	CreateDate     time.Time  `json:"create_date" gorm:"column:create_date;autoCreateTime"`
	CloseDate      *time.Time `json:"close_date,omitempty" gorm:"column:close_date"`
}

// RemainingAmount is how much of the donation is not yet distributed.
func (d *Donation) RemainingAmount() int64 {
	return d.FullAmount - d.InvestedAmount
}

// AddInvestment books the given amount of the donation into projects.
func (d *Donation) AddInvestment(amount int64) {
	d.InvestedAmount += amount
}

// MarkClosed flags the donation as fully distributed as of the given moment.
func (d *Donation) MarkClosed(at time.Time) {
	d.FullyInvested = true
	d.CloseDate = &at
}

// IsClosed reports whether the donation is fully distributed.
func (d *Donation) IsClosed() bool {
	return d.FullyInvested
}
