package metrics

// IncrementWorkspaceCreated increments workspace creation counter
func (m *Metrics) IncrementWorkspaceCreated() {
	m.safeExecute("IncrementWorkspaceCreated", func() {
		m.WorkspaceCreated.Inc()
	})
}

// IncrementBoardCreated increments board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreated.Inc()
	})
}

// IncrementCardCreated increments card creation counter
func (m *Metrics) IncrementCardCreated() {
	m.safeExecute("IncrementCardCreated", func() {
		m.CardCreated.Inc()
	})
}

// IncrementInviteSent increments the sent-invite counter for a scope
// ("workspace" or "board")
func (m *Metrics) IncrementInviteSent(scope string) {
	m.safeExecute("IncrementInviteSent", func() {
		m.InvitesSent.WithLabelValues(scope).Inc()
	})
}

// IncrementInviteAccepted increments the accepted-invite counter for a scope
func (m *Metrics) IncrementInviteAccepted(scope string) {
	m.safeExecute("IncrementInviteAccepted", func() {
		m.InvitesAccepted.WithLabelValues(scope).Inc()
	})
}

// IncrementRebalance increments the rebalance counter for an entity
// ("list" or "card")
func (m *Metrics) IncrementRebalance(entity string) {
	m.safeExecute("IncrementRebalance", func() {
		m.PositionRebalances.WithLabelValues(entity).Inc()
	})
}

// IncrementEventPublished increments the published-event counter for a type
func (m *Metrics) IncrementEventPublished(eventType string) {
	m.safeExecute("IncrementEventPublished", func() {
		m.EventsPublishedTotal.WithLabelValues(eventType).Inc()
	})
}

// SetWorkspacesTotal sets total workspaces gauge
func (m *Metrics) SetWorkspacesTotal(count int64) {
	m.safeExecute("SetWorkspacesTotal", func() {
		m.WorkspacesTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}
