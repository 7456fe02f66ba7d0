package models

// ============================================================================
// POSITION CONSTANTS
// ============================================================================

// DefaultBasePosition is the position of the first issue in an empty column
const DefaultBasePosition = 1000.0

// DefaultPositionGap is the distance between consecutive appended issues
const DefaultPositionGap = 1000.0

// DefaultMinPositionGap is the smallest gap the allocator will split before
// asking for the column to be renumbered
const DefaultMinPositionGap = 1e-6

// DefaultNoChangeEpsilon absorbs floating-point noise when deciding a drop is a no-op
const DefaultNoChangeEpsilon = 1e-3

// ============================================================================
// ISSUE DEFAULTS
// ============================================================================

// DefaultColumn is where issues land when created without a status
const DefaultColumn = ColumnBacklog

// DefaultPriority is used when an issue is created without a priority
const DefaultPriority = PriorityLow
