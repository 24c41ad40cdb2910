package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// IndexPage renders the room viewer shell. The page holds no room state;
// the client script draws whatever snapshot arrives over /stream.
func IndexPage(roomName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageTop); err != nil {
			return err
		}
		if _, err := io.WriteString(w, templ.EscapeString(roomName)); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageRest)
		return err
	})
}

const pageTop = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<title>Room Viewer</title>
<style>
  body { margin: 0; font-family: monospace; background: #1b1b22; color: #d8d8e0; }
  header { padding: 8px 12px; display: flex; gap: 8px; align-items: center; }
  header h1 { font-size: 14px; margin: 0 12px 0 0; }
  button, input { font-family: inherit; background: #2b2b36; color: inherit; border: 1px solid #44445a; padding: 4px 8px; }
  input#seed { width: 10em; }
  canvas { display: block; margin: 0 auto; background: #101016; }
  #status { margin-left: auto; opacity: 0.7; }
</style>
</head>
<body>
<header>
  <h1>`

const pageRest = `</h1>
  <button id="regen">Regenerate</button>
  <button id="randomize">Random seed</button>
  <input id="seed" type="number" placeholder="seed"/>
  <button id="setSeed">Set seed</button>
  <span id="status">connecting</span>
</header>
<canvas id="room" width="900" height="900"></canvas>
<script>
(function () {
  const canvas = document.getElementById("room");
  const g = canvas.getContext("2d");
  const status = document.getElementById("status");

  const kindColors = {
    floor: "#3a3f4b",
    interior: "#7a5a2f",
    wall: "#8a8a9a",
    door: "#c49a3c",
    corner: "#6a6a7a",
    ceiling: "rgba(90, 110, 160, 0.15)",
  };

  let snapshot = null;

  function draw() {
    g.clearRect(0, 0, canvas.width, canvas.height);
    if (!snapshot) return;

    const pad = 40;
    const worldW = snapshot.width * snapshot.cellSize;
    const worldH = snapshot.height * snapshot.cellSize;
    const scale = Math.min((canvas.width - 2 * pad) / worldW, (canvas.height - 2 * pad) / worldH);

    // World X runs up the screen, world Y runs right.
    const px = (wx, wy) => [pad + wy * scale, canvas.height - pad - wx * scale];

    g.strokeStyle = "#2a2a34";
    for (let x = 0; x <= snapshot.width; x++) {
      const [ax, ay] = px(x * snapshot.cellSize, 0);
      const [bx, by] = px(x * snapshot.cellSize, worldH);
      g.beginPath(); g.moveTo(ax, ay); g.lineTo(bx, by); g.stroke();
    }
    for (let y = 0; y <= snapshot.height; y++) {
      const [ax, ay] = px(0, y * snapshot.cellSize);
      const [bx, by] = px(worldW, y * snapshot.cellSize);
      g.beginPath(); g.moveTo(ax, ay); g.lineTo(bx, by); g.stroke();
    }

    for (const p of snapshot.placements) {
      const [cx, cy] = px(p.x, p.y);
      g.fillStyle = kindColors[p.kind] || "#ffffff";
      const r = p.kind === "wall" || p.kind === "door" ? 5 : 4;
      g.save();
      g.translate(cx, cy);
      g.rotate(-p.yaw * Math.PI / 180);
      g.fillRect(-r, -r, 2 * r, 2 * r);
      g.restore();
    }

    status.textContent = "seed " + snapshot.seed + " / " + snapshot.placements.length + " placements";
  }

  const proto = location.protocol === "https:" ? "wss" : "ws";
  const sock = new WebSocket(proto + "://" + location.host + "/stream");

  sock.onopen = () => { status.textContent = "connected"; };
  sock.onclose = () => { status.textContent = "disconnected"; };
  sock.onmessage = (ev) => {
    const patch = JSON.parse(ev.data);
    if (patch.type === "RoomRegenerated") {
      snapshot = patch.payload.snapshot;
      draw();
    }
  };

  function sendIntent(type, payload) {
    if (sock.readyState === WebSocket.OPEN) {
      sock.send(JSON.stringify({ type: type, payload: payload || {} }));
    }
  }

  document.getElementById("regen").onclick = () => sendIntent("RequestRegenerate");
  document.getElementById("randomize").onclick = () => sendIntent("RequestRandomizeSeed");
  document.getElementById("setSeed").onclick = () => {
    const v = document.getElementById("seed").value;
    if (v !== "") sendIntent("RequestSetSeed", { seed: Number(v) });
  };
})();
</script>
</body>
</html>
`
