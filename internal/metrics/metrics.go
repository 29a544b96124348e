package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/AtelierGuildRank_Go/internal/domain"
)

// Recorder exports judgment, crafting and sale outcomes as Prometheus counters.
// It satisfies quest.Recorder, crafting.CraftRecorder and economy.SaleRecorder.
type Recorder struct {
	deliveries         prometheus.Counter
	deliveriesRejected prometheus.Counter
	itemsDelivered     prometheus.Counter
	contributionEarned prometheus.Counter
	goldEarned         prometheus.Counter

	penalties        prometheus.Counter
	contributionLost prometheus.Counter
	goldLost         prometheus.Counter

	itemsCrafted *prometheus.CounterVec
	itemsSold    *prometheus.CounterVec
	salesGold    prometheus.Counter
}

// NewRecorder registers the counters with reg. Passing prometheus.DefaultRegisterer
// exposes them on the default handler; tests pass a fresh prometheus.NewRegistry().
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      name,
			Help:      help,
		})
	}

	return &Recorder{
		deliveries:         counter(MetricNameDeliveries, HelpTextDeliveries),
		deliveriesRejected: counter(MetricNameDeliveriesRejected, HelpTextDeliveriesRejected),
		itemsDelivered:     counter(MetricNameItemsDelivered, HelpTextItemsDelivered),
		contributionEarned: counter(MetricNameContributionEarned, HelpTextContributionEarned),
		goldEarned:         counter(MetricNameGoldEarned, HelpTextGoldEarned),

		penalties:        counter(MetricNamePenalties, HelpTextPenalties),
		contributionLost: counter(MetricNameContributionLost, HelpTextContributionLost),
		goldLost:         counter(MetricNameGoldLost, HelpTextGoldLost),

		itemsCrafted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameItemsCrafted,
				Help:      HelpTextItemsCrafted,
			},
			[]string{LabelItem, LabelQuality},
		),
		itemsSold: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameItemsSold,
				Help:      HelpTextItemsSold,
			},
			[]string{LabelItem, LabelQuality},
		),
		salesGold: counter(MetricNameSalesGold, HelpTextSalesGold),
	}
}

// RecordDelivery counts an accepted delivery and its payout
func (r *Recorder) RecordDelivery(_ string, reward domain.Reward, itemCount int) {
	r.deliveries.Inc()
	r.itemsDelivered.Add(float64(itemCount))
	r.contributionEarned.Add(float64(reward.Contribution))
	r.goldEarned.Add(float64(reward.Gold))
}

// RecordDeliveryRejected counts a delivery attempt that lacked items
func (r *Recorder) RecordDeliveryRejected(_ string) {
	r.deliveriesRejected.Inc()
}

// RecordPenalty counts an applied expiry penalty. Penalty amounts are negative;
// the counters track their magnitude. Zero penalties are ignored.
func (r *Recorder) RecordPenalty(_ string, penalty domain.Penalty) {
	if penalty.Contribution == 0 && penalty.Gold == 0 {
		return
	}
	r.penalties.Inc()
	r.contributionLost.Add(float64(magnitude(penalty.Contribution)))
	r.goldLost.Add(float64(magnitude(penalty.Gold)))
}

// RecordCraft counts a crafted item by item id and quality
func (r *Recorder) RecordCraft(itemID string, quality domain.Quality) {
	r.itemsCrafted.WithLabelValues(itemID, quality.String()).Inc()
}

// RecordSale counts a sold item and the gold it earned
func (r *Recorder) RecordSale(itemID string, quality domain.Quality, gold int) {
	r.itemsSold.WithLabelValues(itemID, quality.String()).Inc()
	r.salesGold.Add(float64(gold))
}

func magnitude(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
