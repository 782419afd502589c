package entity

import "strings"

// SlotSeparator joins a doctor's slot list inside the slots column.
const SlotSeparator = ", "

// Doctor is a directory entry with its bookable slots.
// Slots keeps the stored ", "-joined form, e.g. "10:00 AM, 04:00 PM".
type Doctor struct {
	ID    int    `gorm:"primaryKey;autoIncrement:false" json:"id" validate:"gt=0"`
	Name  string `gorm:"type:text;not null" json:"name" validate:"required"`
	Slots string `gorm:"type:text" json:"slots"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// SlotList splits the stored slots column into its ordered entries.
func (d *Doctor) SlotList() []string {
	if strings.TrimSpace(d.Slots) == "" {
		return nil
	}
	parts := strings.Split(d.Slots, ",")
	slots := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			slots = append(slots, p)
		}
	}
	return slots
}

// JoinSlots renders slots in the stored column form.
func JoinSlots(slots []string) string {
	return strings.Join(slots, SlotSeparator)
}
