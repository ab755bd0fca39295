package rules

// EventName identifies one entry of the maintenance event table.
type EventName string

const (
	EventAllIsWell                EventName = "All Is Well"
	EventAttack                   EventName = "Attack"
	EventCriminalHireling         EventName = "Criminal Hireling"
	EventExtraordinaryOpportunity EventName = "Extraordinary Opportunity"
	EventFriendlyVisitors         EventName = "Friendly Visitors"
	EventGuest                    EventName = "Guest"
	EventLostHirelings            EventName = "Lost Hirelings"
	EventMagicalDiscovery         EventName = "Magical Discovery"
	EventRefugees                 EventName = "Refugees"
	EventRequestForAid            EventName = "Request for Aid"
	EventTreasure                 EventName = "Treasure"
)

// eventBand is one contiguous roll range of the event table.
type eventBand struct {
	low, high int
	name      EventName
}

// eventTable maps a d100 roll onto an event. Bands are sorted and cover
// 1 through 100 with no gaps.
var eventTable = []eventBand{
	{1, 50, EventAllIsWell},
	{51, 55, EventAttack},
	{56, 58, EventCriminalHireling},
	{59, 63, EventExtraordinaryOpportunity},
	{64, 72, EventFriendlyVisitors},
	{73, 76, EventGuest},
	{77, 79, EventLostHirelings},
	{80, 83, EventMagicalDiscovery},
	{84, 91, EventRefugees},
	{92, 98, EventRequestForAid},
	{99, 100, EventTreasure},
}

// EventForRoll maps a d100 result onto the event table. Rolls outside
// 1 through 100 return false.
func EventForRoll(roll int) (EventName, bool) {
	for _, band := range eventTable {
		if roll >= band.low && roll <= band.high {
			return band.name, true
		}
	}
	return "", false
}

// KnownEvent reports whether name is an entry of the event table.
func KnownEvent(name EventName) bool {
	for _, band := range eventTable {
		if band.name == name {
			return true
		}
	}
	return false
}

// EventNames returns the table entries in roll order.
func EventNames() []EventName {
	names := make([]EventName, 0, len(eventTable))
	for _, band := range eventTable {
		names = append(names, band.name)
	}
	return names
}
