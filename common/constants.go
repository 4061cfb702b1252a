package common

// Screen is the route of a navigation destination
type Screen string

const (
	HOME   Screen = "navigation_home"
	ROBOTS Screen = "navigation_robots"
)

// DefaultRobotsBaseURL points at the gist that hosts the robots document.
// The document itself is resolved relative to it, see RobotsResource.
const DefaultRobotsBaseURL = "https://gist.github.com/ROSAF2/a1e6f9fca91465b3b4db4b122312abc8/"
const RobotsResource = "raw"

const CompanyName = "Robot Company Inc."
const MembersLabel = "Members"

// MilestoneClicks is the number of clicks the home counter has to exceed
// before the milestone message shows up
const MilestoneClicks = 5
