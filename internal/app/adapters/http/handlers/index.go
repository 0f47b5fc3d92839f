package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Regex Validator</title>
<style>
  body { font-family: sans-serif; margin: 0; display: grid; grid-template-columns: 1fr 220px; min-height: 100vh; }
  header { grid-column: 1 / 3; padding: 10px 16px; border-bottom: 1px solid #ccc; display: flex; gap: 10px; align-items: center; }
  main { padding: 16px; }
  aside { padding: 16px; border-left: 1px solid #ccc; }
  input[type=text] { width: 300px; padding: 4px; }
  button { background: #4682b4; color: white; border: 0; padding: 5px 10px; cursor: pointer; }
  aside button { display: block; width: 180px; height: 30px; margin-bottom: 4px; }
  .ok { color: #32cd32; }
  .bad { color: #dc143c; }
  .row { display: flex; gap: 10px; align-items: center; margin-bottom: 4px; }
  .row .verdict { margin-left: auto; }
</style>
</head>
<body>
<header>
  <h3>Pattern:</h3>
  <input id="pattern" type="text" placeholder="Enter regex pattern here..." title="Enter your regular expression pattern here">
  <span id="state"></span>
</header>
<main>
  <div class="row">
    <label>Test string:</label>
    <input id="value" type="text" placeholder="Enter test string here...">
    <button id="add" title="Add a new test string">Add</button>
  </div>
  <hr>
  <div id="results"></div>
</main>
<aside>
  <h3>Preset Patterns</h3>
  <div id="presets"></div>
</aside>
<script>
(async () => {
  const $ = (id) => document.getElementById(id);
  const created = await (await fetch("/api/sessions", {method: "POST"})).json();
  const proto = location.protocol === "https:" ? "wss" : "ws";
  const ws = new WebSocket(proto + "://" + location.host + "/api/sessions/" + created.id + "/ws");
  const send = (msg) => ws.send(JSON.stringify(msg));

  const render = (snap) => {
    const st = snap.state;
    const state = $("state");
    if (st.status === "invalid") {
      state.className = "bad";
      state.textContent = "⚠ Invalid: " + st.error;
    } else if (st.status === "valid") {
      state.className = "ok";
      state.textContent = "✓ Valid Regex";
    } else {
      state.className = "";
      state.textContent = "";
    }

    const list = $("results");
    list.replaceChildren();
    snap.results.forEach((r, idx) => {
      const row = document.createElement("div");
      row.className = "row";
      const del = document.createElement("button");
      del.textContent = "❌";
      del.title = "Remove this test string";
      del.onclick = () => send({type: "remove", index: idx});
      const text = document.createElement("span");
      text.textContent = r.text;
      const verdict = document.createElement("span");
      verdict.className = "verdict " + (r.matched ? "ok" : "bad");
      verdict.textContent = r.matched ? "✓ Match" : "✗ No Match";
      row.append(del, text, verdict);
      list.append(row);
    });
  };

  ws.onmessage = (ev) => {
    const msg = JSON.parse(ev.data);
    if (msg.type === "snapshot") render(msg.snapshot);
  };

  $("pattern").oninput = (ev) => send({type: "pattern", data: ev.target.value});

  const add = () => {
    const value = $("value").value;
    if (value === "") return;
    send({type: "add", data: value});
    $("value").value = "";
  };
  $("add").onclick = add;
  $("value").onkeydown = (ev) => { if (ev.key === "Enter") add(); };

  const presets = await (await fetch("/api/presets")).json();
  presets.presets.forEach((p) => {
    const btn = document.createElement("button");
    btn.textContent = p.name;
    btn.title = "Pattern: " + p.pattern;
    btn.onclick = () => { $("pattern").value = p.pattern; send({type: "preset", data: p.name}); };
    $("presets").append(btn);
  });
})();
</script>
</body>
</html>`

func (h *Handlers) IndexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
