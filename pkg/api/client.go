package api

import (
	"context"

	"connectrpc.com/connect"
)

// Client calls every StudyFlow procedure on one server.
type Client struct {
	login        *connect.Client[LoginRequest, LoginResponse]
	logout       *connect.Client[LogoutRequest, LogoutResponse]
	getProfile   *connect.Client[GetProfileRequest, GetProfileResponse]
	logSession   *connect.Client[LogSessionRequest, LogSessionResponse]
	listSessions *connect.Client[ListSessionsRequest, ListSessionsResponse]

	listExams       *connect.Client[ListExamsRequest, ListExamsResponse]
	addExam         *connect.Client[AddExamRequest, AddExamResponse]
	deleteExam      *connect.Client[DeleteExamRequest, DeleteExamResponse]
	addSubject      *connect.Client[AddSubjectRequest, AddSubjectResponse]
	completeChapter *connect.Client[CompleteChapterRequest, CompleteChapterResponse]
	getDashboard    *connect.Client[GetDashboardRequest, GetDashboardResponse]

	addFriend      *connect.Client[AddFriendRequest, AddFriendResponse]
	getLeaderboard *connect.Client[GetLeaderboardRequest, GetLeaderboardResponse]

	generateFlashcards *connect.Client[GenerateFlashcardsRequest, GenerateFlashcardsResponse]
	solveDoubt         *connect.Client[SolveDoubtRequest, SolveDoubtResponse]
}

// NewClient constructs a Client for the server at baseURL
// (e.g. http://localhost:8080).
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	opts = append([]connect.ClientOption{WithJSON()}, opts...)
	return &Client{
		login:        connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+ProfileServiceLoginProcedure, opts...),
		logout:       connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+ProfileServiceLogoutProcedure, opts...),
		getProfile:   connect.NewClient[GetProfileRequest, GetProfileResponse](httpClient, baseURL+ProfileServiceGetProfileProcedure, opts...),
		logSession:   connect.NewClient[LogSessionRequest, LogSessionResponse](httpClient, baseURL+ProfileServiceLogSessionProcedure, opts...),
		listSessions: connect.NewClient[ListSessionsRequest, ListSessionsResponse](httpClient, baseURL+ProfileServiceListSessionsProcedure, opts...),

		listExams:       connect.NewClient[ListExamsRequest, ListExamsResponse](httpClient, baseURL+PlanServiceListExamsProcedure, opts...),
		addExam:         connect.NewClient[AddExamRequest, AddExamResponse](httpClient, baseURL+PlanServiceAddExamProcedure, opts...),
		deleteExam:      connect.NewClient[DeleteExamRequest, DeleteExamResponse](httpClient, baseURL+PlanServiceDeleteExamProcedure, opts...),
		addSubject:      connect.NewClient[AddSubjectRequest, AddSubjectResponse](httpClient, baseURL+PlanServiceAddSubjectProcedure, opts...),
		completeChapter: connect.NewClient[CompleteChapterRequest, CompleteChapterResponse](httpClient, baseURL+PlanServiceCompleteChapterProcedure, opts...),
		getDashboard:    connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+PlanServiceGetDashboardProcedure, opts...),

		addFriend:      connect.NewClient[AddFriendRequest, AddFriendResponse](httpClient, baseURL+SocialServiceAddFriendProcedure, opts...),
		getLeaderboard: connect.NewClient[GetLeaderboardRequest, GetLeaderboardResponse](httpClient, baseURL+SocialServiceGetLeaderboardProcedure, opts...),

		generateFlashcards: connect.NewClient[GenerateFlashcardsRequest, GenerateFlashcardsResponse](httpClient, baseURL+TutorServiceGenerateFlashcardsProcedure, opts...),
		solveDoubt:         connect.NewClient[SolveDoubtRequest, SolveDoubtResponse](httpClient, baseURL+TutorServiceSolveDoubtProcedure, opts...),
	}
}

// call unwraps a unary call into its message.
func call[Req, Res any](ctx context.Context, c *connect.Client[Req, Res], req *Req) (*Res, error) {
	resp, err := c.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func (c *Client) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	return call(ctx, c.login, req)
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := call(ctx, c.logout, &LogoutRequest{})
	return err
}

func (c *Client) GetProfile(ctx context.Context) (*GetProfileResponse, error) {
	return call(ctx, c.getProfile, &GetProfileRequest{})
}

func (c *Client) LogSession(ctx context.Context, req *LogSessionRequest) (*LogSessionResponse, error) {
	return call(ctx, c.logSession, req)
}

func (c *Client) ListSessions(ctx context.Context) (*ListSessionsResponse, error) {
	return call(ctx, c.listSessions, &ListSessionsRequest{})
}

func (c *Client) ListExams(ctx context.Context) (*ListExamsResponse, error) {
	return call(ctx, c.listExams, &ListExamsRequest{})
}

func (c *Client) AddExam(ctx context.Context, req *AddExamRequest) (*AddExamResponse, error) {
	return call(ctx, c.addExam, req)
}

func (c *Client) DeleteExam(ctx context.Context, req *DeleteExamRequest) error {
	_, err := call(ctx, c.deleteExam, req)
	return err
}

func (c *Client) AddSubject(ctx context.Context, req *AddSubjectRequest) (*AddSubjectResponse, error) {
	return call(ctx, c.addSubject, req)
}

func (c *Client) CompleteChapter(ctx context.Context, req *CompleteChapterRequest) (*CompleteChapterResponse, error) {
	return call(ctx, c.completeChapter, req)
}

func (c *Client) GetDashboard(ctx context.Context) (*GetDashboardResponse, error) {
	return call(ctx, c.getDashboard, &GetDashboardRequest{})
}

func (c *Client) AddFriend(ctx context.Context, req *AddFriendRequest) (*AddFriendResponse, error) {
	return call(ctx, c.addFriend, req)
}

func (c *Client) GetLeaderboard(ctx context.Context) (*GetLeaderboardResponse, error) {
	return call(ctx, c.getLeaderboard, &GetLeaderboardRequest{})
}

func (c *Client) GenerateFlashcards(ctx context.Context, req *GenerateFlashcardsRequest) (*GenerateFlashcardsResponse, error) {
	return call(ctx, c.generateFlashcards, req)
}

func (c *Client) SolveDoubt(ctx context.Context, req *SolveDoubtRequest) (*SolveDoubtResponse, error) {
	return call(ctx, c.solveDoubt, req)
}
