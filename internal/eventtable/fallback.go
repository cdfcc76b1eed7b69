package eventtable

import "github.com/jengzang/handover-backend-go/internal/models"

var fallbackRows = []models.EventRow{
	{Code: "A1", Description: "Serving becomes better than threshold", Trigger: "Ms - Hys > Thresh", ConditionType: "Absolute", Action: "Stop inter-frequency / IRAT measurements"},
	{Code: "A2", Description: "Serving becomes worse than threshold", Trigger: "Ms + Hys < Thresh", ConditionType: "Absolute", Action: "Start inter-frequency / IRAT measurements"},
	{Code: "A3", Description: "Neighbour becomes offset better than serving", Trigger: "Mn + Ofn + Ocn - Hys > Ms + Ofs + Ocs + Off", ConditionType: "Relative", Action: "Intra-frequency handover"},
	{Code: "A4", Description: "Neighbour becomes better than threshold", Trigger: "Mn + Ofn + Ocn - Hys > Thresh", ConditionType: "Absolute", Action: "Load balancing / inter-frequency handover"},
	{Code: "A5", Description: "Serving worse than threshold1 and neighbour better than threshold2", Trigger: "Ms + Hys < Thresh1 and Mn + Ofn + Ocn - Hys > Thresh2", ConditionType: "Absolute", Action: "Inter-frequency handover"},
	{Code: "A6", Description: "Neighbour becomes offset better than SCell", Trigger: "Mn + Ocn - Hys > Ms + Ocs + Off", ConditionType: "Relative", Action: "SCell change (carrier aggregation)"},
	{Code: "B1", Description: "Inter-RAT neighbour becomes better than threshold", Trigger: "Mn + Ofn - Hys > Thresh", ConditionType: "Absolute", Action: "IRAT handover"},
	{Code: "B2", Description: "Serving worse than threshold1 and inter-RAT neighbour better than threshold2", Trigger: "Ms + Hys < Thresh1 and Mn + Ofn - Hys > Thresh2", ConditionType: "Absolute", Action: "IRAT handover to 3G/2G"},
}

// Fallback returns a copy of the embedded event table used when the
// configured source cannot be loaded
func Fallback() []models.EventRow {
	out := make([]models.EventRow, len(fallbackRows))
	copy(out, fallbackRows)
	return out
}
