package testutil

import "robocompany/common"

const RobotsJSON = `[
  {"code": "R-1", "position": "Welder", "img": "http://x/1.png"},
  {"code": "R-2", "position": "Painter", "img": "http://x/2.png", "since": 2019},
  {"code": "R-3", "position": "Inspector", "img": "http://x/3.png"}
]`

const RobotsMissingCodeJSON = `[
  {"code": "R-1", "position": "Welder", "img": "http://x/1.png"},
  {"position": "Painter", "img": "http://x/2.png"}
]`

// Robots matches RobotsJSON
func Robots() []common.Robot {
	return []common.Robot{
		{Code: "R-1", Position: "Welder", Img: "http://x/1.png"},
		{Code: "R-2", Position: "Painter", Img: "http://x/2.png"},
		{Code: "R-3", Position: "Inspector", Img: "http://x/3.png"},
	}
}
