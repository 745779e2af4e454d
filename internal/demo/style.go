package demo

// baseCSS is the demo's entire stylesheet, inlined into every page so
// rendered documents are self-contained.
const baseCSS = `
:root { font-family: system-ui, sans-serif; color: #1f2430; }
body { margin: 0; background: #f4f5f9; }

.topbar { display: flex; align-items: center; gap: 16px; padding: 10px 20px;
  background: #fff; border-bottom: 1px solid #e3e6ef; }
.sidebar-toggle { border: 1px solid #d4d8e3; background: #fff; padding: 6px 12px;
  border-radius: 6px; cursor: pointer; }
.search-box { flex: 1; max-width: 420px; }
.search-box input { width: 100%; padding: 8px 12px; border: 1px solid #d4d8e3;
  border-radius: 6px; }
.topbar-actions { margin-left: auto; display: flex; gap: 18px; }

.dropdown { position: relative; }
.dropdown-toggle { color: #1f2430; text-decoration: none; }
.dropdown-menu { display: none; position: absolute; right: 0; top: 130%;
  min-width: 220px; background: #fff; border: 1px solid #e3e6ef;
  border-radius: 8px; box-shadow: 0 8px 24px rgba(20, 24, 40, 0.12);
  padding: 6px 0; z-index: 30; }
.dropdown-menu.show { display: block; }
.dropdown-item { display: block; padding: 8px 14px; color: #1f2430;
  text-decoration: none; }
.dropdown-item:hover { background: #f0f2f8; }

.dashboard-wrap { display: flex; min-height: calc(100vh - 53px); }
.dashboard-sidebar { width: 220px; background: #131a2e; color: #c6cce0;
  padding: 18px 0; flex-shrink: 0; }
.sidebar-brand { padding: 0 20px 18px; font-weight: 700; color: #fff; }
.nav-link { display: block; padding: 10px 20px; color: #c6cce0;
  text-decoration: none; }
.nav-link:hover { background: #1b2440; color: #fff; }
.nav-link.active { background: #232f5e; color: #fff; }
.dashboard-content { flex: 1; padding: 24px; }

@media (max-width: 1024px) {
  .dashboard-sidebar { position: fixed; left: -220px; top: 53px; bottom: 0;
    transition: left 0.2s ease; z-index: 20; }
  .dashboard-sidebar.open { left: 0; }
}

.card { background: #fff; border: 1px solid #e3e6ef; border-radius: 10px;
  padding: 18px 20px; margin-bottom: 20px; }
.card h2 { margin: 0 0 14px; font-size: 17px; }

.stat-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 16px;
  margin-bottom: 20px; }
.stat-card { background: #fff; border: 1px solid #e3e6ef; border-radius: 10px;
  padding: 16px 18px; display: flex; flex-direction: column; gap: 4px; }
.stat-value { font-size: 22px; font-weight: 700; }
.stat-label { font-size: 13px; color: #6b7390; }

.data-table { width: 100%; border-collapse: collapse; font-size: 14px; }
.data-table th, .data-table td { text-align: left; padding: 9px 12px;
  border-bottom: 1px solid #eef0f6; }
.data-table th.sortable { cursor: pointer; user-select: none; }
.data-table th.sorted-asc::after { content: " \2191"; }
.data-table th.sorted-desc::after { content: " \2193"; }
.row-hidden { display: none; }
.row-actions a { margin-right: 10px; font-size: 13px; }

.badge { padding: 2px 9px; border-radius: 999px; font-size: 12px; }
.badge-new { background: #e1ecff; color: #2458c5; }
.badge-contacted { background: #fff3d6; color: #9a6b00; }
.badge-qualified { background: #e0f6e9; color: #177245; }
.badge-won { background: #d9f2f0; color: #0d6e66; }
.badge-present { background: #e0f6e9; color: #177245; }
.badge-remote { background: #e1ecff; color: #2458c5; }
.badge-leave { background: #fde2e1; color: #b23330; }

.alert { padding: 12px 16px; border-radius: 8px; margin-bottom: 16px;
  transition: opacity 0.3s ease; }
.alert-hiding { opacity: 0; }
.alert-success { background: #e0f6e9; color: #177245; }
.alert-info { background: #e1ecff; color: #2458c5; }
.alert-warning { background: #fff3d6; color: #9a6b00; }

.form-group { margin-bottom: 14px; display: flex; flex-direction: column;
  gap: 6px; max-width: 420px; }
.form-group input, .form-group textarea { padding: 8px 12px;
  border: 1px solid #d4d8e3; border-radius: 6px; }
.field-error { border-color: #c84440; }
.field-error-message { color: #c84440; font-size: 13px; }
.btn { border: 0; border-radius: 6px; padding: 9px 16px; cursor: pointer; }
.btn-primary { background: #2458c5; color: #fff; }
.password-toggle { align-self: flex-start; margin-top: 4px; }
.password-toggle.active { font-weight: 600; }

.toast-container { position: fixed; right: 20px; bottom: 20px; display: flex;
  flex-direction: column; gap: 10px; z-index: 40; }
.toast { background: #fff; border-left: 4px solid #2458c5; border-radius: 8px;
  box-shadow: 0 8px 24px rgba(20, 24, 40, 0.16); padding: 12px 16px;
  display: flex; align-items: center; gap: 12px; opacity: 0;
  transition: opacity 0.2s ease; }
.toast.toast-visible { opacity: 1; }
.toast.toast-hiding { opacity: 0; }
.toast-success { border-left-color: #177245; }
.toast-error { border-left-color: #c84440; }
.toast-warning { border-left-color: #9a6b00; }

.tooltip { position: absolute; background: #131a2e; color: #fff;
  padding: 5px 10px; border-radius: 6px; font-size: 12px; z-index: 50; }

.chart { min-height: 180px; }
.chart-bars { list-style: none; margin: 0; padding: 0; display: flex;
  gap: 14px; align-items: flex-end; }
.chart-bar { flex: 1; background: #e1ecff; border-radius: 6px 6px 0 0;
  padding: 10px 6px; text-align: center; display: flex;
  flex-direction: column; gap: 6px; }
.chart-month { font-weight: 600; }
.chart-total { font-size: 12px; color: #2458c5; }
`
