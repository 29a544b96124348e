package metrics

// Namespace prefixes every metric exported by this module
const Namespace = "atelier"

// ============================================================================
// Metric Names
// ============================================================================

// Quest metric names
const (
	MetricNameDeliveries         = "quest_deliveries_total"
	MetricNameDeliveriesRejected = "quest_deliveries_rejected_total"
	MetricNameItemsDelivered     = "quest_items_delivered_total"
	MetricNameContributionEarned = "contribution_earned_total"
	MetricNameGoldEarned         = "gold_earned_total"
	MetricNamePenalties          = "quest_penalties_total"
	MetricNameContributionLost   = "contribution_penalized_total"
	MetricNameGoldLost           = "gold_penalized_total"
)

// Business metric names
const (
	MetricNameItemsCrafted = "items_crafted_total"
	MetricNameItemsSold    = "items_sold_total"
	MetricNameSalesGold    = "sales_gold_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Quest metric help text
const (
	HelpTextDeliveries         = "Total number of accepted quest deliveries"
	HelpTextDeliveriesRejected = "Total number of quest deliveries rejected for missing items"
	HelpTextItemsDelivered     = "Total number of crafted items handed in for quests"
	HelpTextContributionEarned = "Total guild contribution awarded by deliveries"
	HelpTextGoldEarned         = "Total gold awarded by deliveries"
	HelpTextPenalties          = "Total number of expired-quest penalties applied"
	HelpTextContributionLost   = "Total guild contribution removed by expiry penalties"
	HelpTextGoldLost           = "Total gold removed by expiry penalties"
)

// Business metric help text
const (
	HelpTextItemsCrafted = "Total number of items crafted"
	HelpTextItemsSold    = "Total number of crafted items sold"
	HelpTextSalesGold    = "Total gold earned from selling crafted items"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelItem    = "item"
	LabelQuality = "quality"
)
