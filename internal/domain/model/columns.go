package model

// Column labels of the upload template. The header set is a bit-exact
// external contract shared with the spreadsheet producers.
const (
	ColSeq            = "序号"
	ColName           = "姓名"
	ColGender         = "性别"
	ColAge            = "年龄"
	ColBirthDate      = "出生日期"
	ColPolitical      = "政治面貌"
	ColOrigin         = "籍贯"
	ColStatus         = "应聘状态"
	ColPosition       = "应聘职位"
	ColDegree         = "最高学历"
	ColMajor          = "最高学历专业"
	ColMajorType      = "专业类型"
	ColInstitution    = "最高学历毕业院校"
	ColInstitutionCat = "最高学历毕业院校类别"
)

// RequiredColumns returns the fourteen mandatory column labels in template
// order. The slice is freshly allocated; callers may mutate it.
func RequiredColumns() []string {
	return []string{
		ColSeq,
		ColName,
		ColGender,
		ColAge,
		ColBirthDate,
		ColPolitical,
		ColOrigin,
		ColStatus,
		ColPosition,
		ColDegree,
		ColMajor,
		ColMajorType,
		ColInstitution,
		ColInstitutionCat,
	}
}
