package api

// Fully-qualified service names.
const (
	ProfileServiceName = "studyflow.v1.ProfileService"
	PlanServiceName    = "studyflow.v1.PlanService"
	SocialServiceName  = "studyflow.v1.SocialService"
	TutorServiceName   = "studyflow.v1.TutorService"
)

// ProfileService procedures.
const (
	ProfileServiceLoginProcedure        = "/" + ProfileServiceName + "/Login"
	ProfileServiceLogoutProcedure       = "/" + ProfileServiceName + "/Logout"
	ProfileServiceGetProfileProcedure   = "/" + ProfileServiceName + "/GetProfile"
	ProfileServiceLogSessionProcedure   = "/" + ProfileServiceName + "/LogSession"
	ProfileServiceListSessionsProcedure = "/" + ProfileServiceName + "/ListSessions"
)

// PlanService procedures.
const (
	PlanServiceListExamsProcedure       = "/" + PlanServiceName + "/ListExams"
	PlanServiceAddExamProcedure         = "/" + PlanServiceName + "/AddExam"
	PlanServiceDeleteExamProcedure      = "/" + PlanServiceName + "/DeleteExam"
	PlanServiceAddSubjectProcedure      = "/" + PlanServiceName + "/AddSubject"
	PlanServiceCompleteChapterProcedure = "/" + PlanServiceName + "/CompleteChapter"
	PlanServiceGetDashboardProcedure    = "/" + PlanServiceName + "/GetDashboard"
)

// SocialService procedures.
const (
	SocialServiceAddFriendProcedure      = "/" + SocialServiceName + "/AddFriend"
	SocialServiceGetLeaderboardProcedure = "/" + SocialServiceName + "/GetLeaderboard"
)

// TutorService procedures.
const (
	TutorServiceGenerateFlashcardsProcedure = "/" + TutorServiceName + "/GenerateFlashcards"
	TutorServiceSolveDoubtProcedure         = "/" + TutorServiceName + "/SolveDoubt"
)
