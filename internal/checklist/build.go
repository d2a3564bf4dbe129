package checklist

import "schoolbag/internal/schedule"

// Entry 一个要带的物品及其所属科目
// Entry is one item to bring together with the subject that needs it
type Entry struct {
	Item    string
	Subject string
}

// Build 计算某天需要携带的物品清单
// Build joins a day's subjects with their items.
//
// Subjects contribute in schedule order and items in checklist order. An
// unknown day or a subject without an entry contributes nothing; a subject
// listed twice contributes its items twice.
func Build(day string, days []schedule.DaySchedule, items map[string][]string) []Entry {
	var subjects []string
	for _, d := range days {
		if d.Name == day {
			subjects = d.Subjects
			break
		}
	}

	out := []Entry{}
	for _, subject := range subjects {
		for _, item := range items[subject] {
			out = append(out, Entry{Item: item, Subject: subject})
		}
	}
	return out
}
