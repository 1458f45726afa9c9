package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApprovalAddField(t *testing.T) {
	t.Parallel()
	a := DefaultApproval().AddField(FieldDropdown, WidthHalf)
	f := a.FormFields[len(a.FormFields)-1]
	require.Equal(t, FieldDropdown, f.Type)
	require.Equal(t, WidthHalf, f.Width)
	require.Len(t, f.Options, 1)
	require.Empty(t, f.Placeholder)

	a = a.AddField(FieldInput, "")
	f = a.FormFields[len(a.FormFields)-1]
	require.Equal(t, WidthFull, f.Width)
	require.Nil(t, f.Options)
	require.Equal(t, "입력해주세요", f.Placeholder)
	require.True(t, a.ValidFields())
}

func TestApprovalSetFieldTypeReshapes(t *testing.T) {
	t.Parallel()
	a := DefaultApproval()
	id := a.FormFields[0].ID
	a = a.SetFieldType(id, FieldInput)
	f := a.FormFields[0]
	require.Equal(t, id, f.ID)
	require.Equal(t, "승인자", f.Label)
	require.Equal(t, FieldInput, f.Type)
	require.Nil(t, f.Options)

	a = a.SetFieldType(id, FieldDropdown)
	require.Len(t, a.FormFields[0].Options, 1)
	require.Empty(t, a.FormFields[0].Placeholder)
}

func TestApprovalOptions(t *testing.T) {
	t.Parallel()
	a := DefaultApproval()
	fid := a.FormFields[0].ID
	a = a.AddOption(fid)
	opts := a.FormFields[0].Options
	require.Len(t, opts, 3)
	require.Equal(t, "옵션 3", opts[2].Label)

	a = a.RenameOption(fid, opts[0].ID, "변경").RemoveOption(fid, opts[1].ID)
	require.Equal(t, []string{"변경", "옵션 3"}, []string{a.FormFields[0].Options[0].Label, a.FormFields[0].Options[1].Label})

	input := a.FormFields[2].ID
	require.Equal(t, a.FormFields[2], a.AddOption(input).FormFields[2])
}

func TestApprovalUpdateFieldStripsForeignMembers(t *testing.T) {
	t.Parallel()
	a := DefaultApproval()
	id := a.FormFields[2].ID
	a = a.UpdateField(id, func(f FormField) FormField {
		f.Options = []DropdownOption{{ID: "x", Label: "x"}}
		f.Width = "giant"
		return f
	})
	require.Nil(t, a.FormFields[2].Options)
	require.Equal(t, WidthFull, a.FormFields[2].Width)
}

func TestApprovalFiles(t *testing.T) {
	t.Parallel()
	a := DefaultApproval().AddDocument().AddDocument().AddProgram()
	require.Equal(t, "문서2.pdf", a.DocumentFiles[1].FileName)
	require.Equal(t, "프로그램1.exe", a.ProgramFiles[0].FileName)
	require.True(t, ValidFiles(a.DocumentFiles))

	a = a.RemoveDocument(a.DocumentFiles[0].ID).RemoveProgram(a.ProgramFiles[0].ID)
	require.Len(t, a.DocumentFiles, 1)
	require.Empty(t, a.ProgramFiles)
}

func TestApprovalNotice(t *testing.T) {
	t.Parallel()
	a := DefaultApproval().SetNotice(true)
	require.Equal(t, NoticeText, a.NoticeField.Text)
	require.Empty(t, a.SetNotice(false).NoticeField.Text)
}
