package game_constants

// Room codes are 6 decimal digits; with a million-slot space the retry loop
// practically never runs more than once.
const RoomCodeLength = 6
const RoomCodeMaxAttempts = 1000

const MaxPlayerNameLen = 24

// Archive limits
const RecentGamesKept = 50
const GameSummaryTTLHours = 24
