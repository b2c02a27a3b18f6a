package entities

import "time"

type CharityProject struct {
	ID             uint       `json:"id" gorm:"primaryKey;column:id"`
	Name           string     `json:"name" gorm:"column:name;size:100;uniqueIndex;not null"`
	Description    string     `json:"description" gorm:"column:description;type:text;not null"`
	FullAmount     int64      `json:"full_amount" gorm:"column:full_amount;not null"`
	InvestedAmount int64      `json:"invested_amount" gorm:"column:invested_amount;not null;default:0"`
	FullyInvested  bool       `json:"fully_invested" gorm:"column:fully_invested;not null;default:false"`
	CreateDate     time.Time  `json:"create_date" gorm:"column:create_date;autoCreateTime"`
	CloseDate      *time.Time `json:"close_date,omitempty" gorm:"column:close_date"`
}

// RemainingAmount is how much the project still needs to collect.
func (p *CharityProject) RemainingAmount() int64 {
	return p.FullAmount - p.InvestedAmount
}

// AddInvestment books the given amount into the project.
func (p *CharityProject) AddInvestment(amount int64) {
	p.InvestedAmount += amount
}

// MarkClosed flags the project as fully invested as of the given moment.
func (p *CharityProject) MarkClosed(at time.Time) {
	p.FullyInvested = true
	p.CloseDate = &at
}

// IsClosed reports whether the project stopped accepting funds.
func (p *CharityProject) IsClosed() bool {
	return p.FullyInvested
}
