// Package models defines the core domain models for StudyFlow.
//
// # Records
//
// All state lives in four independently keyed records, each a direct JSON
// encoding of the types below:
//   - Profile: the single local user (nil until login)
//   - []Exam: the study plan, Exam -> Subject -> Chapter
//   - []StudyLog: append-only focus sessions
//   - []Friend: locally added peers used for the leaderboard
//
// JSON field names match the records written by the original web client, so
// an exported localStorage dump can be loaded without conversion.
//
// # Derived types
//
// Task, LeaderboardEntry and Flashcard are never persisted. Tasks and
// leaderboard entries are computed by the planner package; flashcards are
// produced by the AI gateway and handed straight back to the caller.
//
// # Design Principles
//
//  1. Relationships are by containment (an Exam owns its Subjects) or by ID
//     strings, never by pointer.
//  2. IDs are UUIDv4 strings, unique within their parent collection.
//  3. Chapters change only through their completion flag after creation.
package models
