// Package message is the table of user-facing strings. Validation and
// submission logic reference these constants so the wording can change
// without touching the logic itself.
package message

// Field keys used in validation error maps.
const (
	FieldWeeklyRemarks = "weeklyRemarks"
	FieldDailyRecords  = "dailyRecords"
)

const (
	MsgWeeklyRemarksTooLong = "週次所感は1000文字以内で入力してください。"
	MsgWorkTimeRequired     = "勤務時間が入力されていません。少なくとも1日分の勤務時間を入力してください。"
	MsgIncompleteTimeEntry  = "開始時刻と終了時刻は両方入力してください。"
	MsgSameWorkTimeWarning  = "自社勤怠と客先勤怠に同じ時間が入力されています。入力内容を確認してください。"

	MsgAlreadySubmitted  = "この週報は既に提出済みです。"
	MsgReportNotEditable = "提出済みの週報は編集できません。"
	MsgReportNotFound    = "週報が見つかりません。"

	MsgDraftSaved      = "下書きとして保存しました"
	MsgReportSubmitted = "週報を提出しました"
)
