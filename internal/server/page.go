package server

// chatPage is the browser client. It connects back to the page URL with the
// room and nick query parameters and renders msg and system frames.
const chatPage = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>roomrelay</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; background: #f4f4f4; }
        header { padding: 10px 20px; background: #222; color: #eee; }
        #messages {
            height: calc(100vh - 120px);
            overflow-y: auto;
            padding: 10px 20px;
            background: #fff;
        }
        .line { margin: 3px 0; white-space: pre-wrap; word-break: break-word; }
        .nick { font-weight: bold; }
        .system { color: #777; font-style: italic; }
        #msg-form { display: flex; padding: 10px 20px; }
        #msg-input { flex: 1; padding: 6px; }
        button { padding: 6px 15px; background: #007cba; color: white; border: none; cursor: pointer; }
        button:hover { background: #005a87; }
        #join-overlay {
            position: fixed; inset: 0; background: rgba(0, 0, 0, 0.6);
            display: flex; align-items: center; justify-content: center;
        }
        #join-overlay form { background: #fff; padding: 20px; border-radius: 4px; }
        #join-overlay input { display: block; margin: 8px 0; padding: 6px; width: 220px; }
    </style>
</head>
<body>
    <header><span id="room-title">roomrelay</span></header>
    <div id="messages"></div>
    <form id="msg-form">
        <input type="text" id="msg-input" autocomplete="off" placeholder="Message, or /nick newname">
        <button type="submit">Send</button>
    </form>

    <div id="join-overlay">
        <form id="join-form">
            <input type="text" id="room-input" placeholder="room (lobby)">
            <input type="text" id="nick-input" placeholder="nickname" maxlength="32">
            <button type="submit">Join</button>
        </form>
    </div>

    <script>
    (function () {
        const overlay = document.getElementById('join-overlay');
        const joinForm = document.getElementById('join-form');
        const roomInput = document.getElementById('room-input');
        const nickInput = document.getElementById('nick-input');
        const roomTitle = document.getElementById('room-title');
        const messages = document.getElementById('messages');
        const msgForm = document.getElementById('msg-form');
        const msgInput = document.getElementById('msg-input');

        let ws = null;

        function info(text) {
            render({ type: 'system', subtype: 'info', text: text });
        }

        function render(ev) {
            const line = document.createElement('div');
            line.className = 'line';
            if (ev.type === 'msg') {
                const nick = document.createElement('span');
                nick.className = 'nick';
                nick.textContent = ev.nick;
                nick.style.color = ev.color || 'black';
                line.appendChild(nick);
                line.appendChild(document.createTextNode(': ' + ev.text));
            } else if (ev.type === 'system') {
                line.className += ' system';
                switch (ev.subtype) {
                case 'join': line.textContent = ev.nick + ' joined the room.'; break;
                case 'part': line.textContent = ev.nick + ' left.'; break;
                case 'nick': line.textContent = ev.old + ' is now ' + ev.nick + '.'; break;
                default: line.textContent = ev.text || JSON.stringify(ev);
                }
            } else {
                return;
            }
            messages.appendChild(line);
            messages.scrollTop = messages.scrollHeight;
        }

        function connect(room, nick) {
            const proto = location.protocol === 'https:' ? 'wss' : 'ws';
            const params = new URLSearchParams({ room: room, nick: nick });
            ws = new WebSocket(proto + '://' + location.host + '/?' + params.toString());

            ws.addEventListener('open', function () {
                overlay.style.display = 'none';
                roomTitle.textContent = '#' + room;
                info('Connected as ' + nick);
            });
            ws.addEventListener('message', function (msg) {
                try { render(JSON.parse(msg.data)); } catch (e) { /* ignore */ }
            });
            ws.addEventListener('close', function () {
                info('Disconnected. Reload the page to reconnect.');
            });
            ws.addEventListener('error', function () {
                info('Connection error.');
            });
        }

        joinForm.addEventListener('submit', function (e) {
            e.preventDefault();
            const room = roomInput.value.trim().replace(/[^a-zA-Z0-9_-]/g, '') || 'lobby';
            const nick = nickInput.value.trim().slice(0, 32);
            connect(room, nick);
        });

        msgForm.addEventListener('submit', function (e) {
            e.preventDefault();
            const text = msgInput.value.trim();
            if (!text) {
                return;
            }
            if (!ws || ws.readyState !== WebSocket.OPEN) {
                info('Not connected.');
                return;
            }
            if (text.startsWith('/nick ')) {
                const nick = text.slice(6).trim().slice(0, 32);
                if (nick) {
                    ws.send(JSON.stringify({ type: 'nick', nick: nick }));
                }
            } else {
                ws.send(JSON.stringify({ type: 'msg', text: text }));
            }
            msgInput.value = '';
        });

        const query = new URLSearchParams(location.search);
        if (query.get('room')) { roomInput.value = query.get('room'); }
        if (query.get('nick')) { nickInput.value = query.get('nick'); }
        if (location.hash.length > 1) { roomInput.value = location.hash.slice(1); }
    })();
    </script>
</body>
</html>
`
