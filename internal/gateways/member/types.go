package member

type CreateMemberInput struct {
	Name      string
	Points    int
	BooksRead int
	Clubs     []string
}

type UpdateMemberInput struct {
	MemberID  int
	Name      string
	Points    int
	BooksRead int
}
